package partition

import (
	"fmt"
	"os"

	"github.com/awalterschulze/gographviz"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/rock-share/base/logger"
)

type traceNode struct {
	classType    equivalence.ClassType
	instanceSize int
	memberCount  int
	attrs        []int // attrs 这个结点是用哪些属性分出来的，根结点为空
}

// Tracer 记录增量划分过程中聚合的父子关系，可以导出成dot图
type Tracer struct {
	ids   map[equivalence.Aggregate]int
	nodes []traceNode
	edges [][2]int
}

func NewTracer() *Tracer {
	return &Tracer{ids: make(map[equivalence.Aggregate]int)}
}

// Incremental 和 partition.Incremental 相同，同时记录划分
func (t *Tracer) Incremental(aggregates []equivalence.Aggregate, batch instance.AttributeIterator) *Result {
	return incremental(aggregates, batch, t)
}

func (t *Tracer) NodeNum() int {
	return len((*t).nodes)
}

func (t *Tracer) EdgeNum() int {
	return len((*t).edges)
}

func (t *Tracer) nodeID(agg equivalence.Aggregate, attrs []int) int {
	if id, ok := (*t).ids[agg]; ok {
		return id
	}
	id := len((*t).nodes)
	(*t).ids[agg] = id
	(*t).nodes = append((*t).nodes, traceNode{attrs: attrs})
	return id
}

func (t *Tracer) record(parent, child equivalence.Aggregate, attrs []int) {
	p := t.nodeID(parent, nil)
	c := t.nodeID(child, attrs)
	(*t).edges = append((*t).edges, [2]int{p, c})
}

func (t *Tracer) refresh(agg equivalence.Aggregate, id int) {
	node := &(*t).nodes[id]
	node.classType = agg.Type()
	node.instanceSize = agg.InstanceSize()
	node.memberCount = agg.MemberCount()
}

// ToSimpleGraph 把记录的划分树写成dot文件
func (t *Tracer) ToSimpleGraph(outPath string) error {
	graphAst, err := gographviz.Parse([]byte(`digraph G{}`))
	if err != nil {
		return err
	}
	graph := gographviz.NewGraph()
	if err = gographviz.Analyse(graphAst, graph); err != nil {
		return err
	}
	// 聚合在record之后还可能继续AddItem，导出前再取一次
	for agg, id := range (*t).ids {
		t.refresh(agg, id)
	}
	for i, node := range (*t).nodes {
		label := fmt.Sprintf("<id = %d<br/>type = %s<br/>samples = %d<br/>members = %d<br/>by = %v>",
			i, node.classType, node.instanceSize, node.memberCount, node.attrs)
		if err = graph.AddNode("G", fmt.Sprintf("%d", i), map[string]string{"label": label}); err != nil {
			return err
		}
	}
	for _, edge := range (*t).edges {
		if err = graph.AddEdge(fmt.Sprintf("%d", edge[0]), fmt.Sprintf("%d", edge[1]), true, nil); err != nil {
			return err
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Errorf("error when open file:%s--%v", outPath, err)
		return err
	}
	defer out.Close()
	if _, err = out.WriteString(graph.String()); err != nil {
		logger.Errorf("error when write to file:%s--%v", outPath, err)
		return err
	}
	return nil
}
