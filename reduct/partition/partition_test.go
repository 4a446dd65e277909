package partition

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/exp/slices"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/strategy"
)

// 决策值 | a1 a2 a3
var sampleRows = [][]int{
	{0, 1, 1, 1},
	{0, 1, 1, 2},
	{1, 1, 2, 1},
	{1, 1, 2, 2},
	{1, 2, 1, 1},
	{0, 2, 2, 2},
}

// 前两行取值相同决策不同
var conflictRows = [][]int{
	{0, 1, 1, 1},
	{1, 1, 1, 1},
	{0, 1, 2, 1},
	{1, 2, 2, 1},
	{1, 2, 2, 2},
	{0, 2, 1, 2},
	{0, 1, 2, 2},
}

func universe(rows [][]int) []equivalence.Aggregate {
	instances := instance.FromRows(rows)
	attrs := instance.ConditionAttributes(instances[0].AttributeNum())
	classes := equivalence.Sorted(equivalence.Build(instances, instance.NewArrayIterator(attrs)))
	return []equivalence.Aggregate{equivalence.NewUniverse(classes)}
}

func attrs(a ...int) instance.AttributeIterator {
	return instance.NewArrayIterator(a)
}

func TestIncremental(t *testing.T) {
	Convey("TestIncremental", t, func() {
		Convey("full attribute set resolves every instance", func() {
			u := universe(sampleRows)
			So(u[0].Type(), ShouldEqual, equivalence.Boundary)
			result := Incremental(u, attrs(1, 2, 3))
			So(result.BoundaryEmpty, ShouldBeTrue)
			So(result.PositiveDelta, ShouldEqual, 6)
			So(len(result.Aggregates), ShouldEqual, 6)
			for _, agg := range result.Aggregates {
				So(agg.Type(), ShouldEqual, equivalence.Positive)
				So(agg.InstanceSize(), ShouldEqual, 1)
			}
		})

		Convey("single attribute leaves two boundary aggregates", func() {
			result := Incremental(universe(sampleRows), attrs(1))
			So(result.BoundaryEmpty, ShouldBeFalse)
			So(result.PositiveDelta, ShouldEqual, 0)
			So(len(result.Boundary), ShouldEqual, 2)
			So(result.Boundary[0].InstanceSize(), ShouldEqual, 4)
			So(result.Boundary[1].InstanceSize(), ShouldEqual, 2)
			So(len(result.Resolved()), ShouldEqual, 0)
		})

		Convey("input aggregates are not modified", func() {
			u := universe(sampleRows)
			_ = Incremental(u, attrs(1, 2))
			So(u[0].Type(), ShouldEqual, equivalence.Boundary)
			So(u[0].MemberCount(), ShouldEqual, 6)
			So(u[0].InstanceSize(), ShouldEqual, 6)
		})

		Convey("resolved aggregates pass through untouched", func() {
			first := Incremental(universe(sampleRows), attrs(1, 2))
			So(first.BoundaryEmpty, ShouldBeTrue)
			second := Incremental(first.Aggregates, attrs(3))
			So(second.PositiveDelta, ShouldEqual, 0)
			So(len(second.Aggregates), ShouldEqual, len(first.Aggregates))
			for i := range first.Aggregates {
				So(second.Aggregates[i], ShouldEqual, first.Aggregates[i])
			}
		})

		Convey("empty batch keeps boundary as is", func() {
			u := universe(sampleRows)
			result := Incremental(u, attrs())
			So(len(result.Boundary), ShouldEqual, 1)
			So(result.Boundary[0], ShouldEqual, u[0])
		})

		Convey("inconsistent leaves end up negative", func() {
			result := Incremental(universe(conflictRows), attrs(1, 2, 3))
			So(result.BoundaryEmpty, ShouldBeTrue)
			So(result.PositiveDelta, ShouldEqual, 7)
			negative := 0
			for _, agg := range result.Aggregates {
				if agg.Type() == equivalence.Negative {
					negative += agg.InstanceSize()
				}
			}
			So(negative, ShouldEqual, 2)
		})
	})
}

func TestBatchSingletonEquivalence(t *testing.T) {
	Convey("TestBatchSingletonEquivalence", t, func() {
		for _, rows := range [][][]int{sampleRows, conflictRows} {
			batch := Incremental(universe(rows), attrs(1, 2, 3))
			for _, order := range [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}} {
				singles := make([]instance.AttributeIterator, 0, len(order))
				for _, a := range order {
					singles = append(singles, attrs(a))
				}
				stepwise := Refine(universe(rows), singles...)
				So(stepwise.PositiveDelta, ShouldEqual, batch.PositiveDelta)
				So(stepwise.BoundaryEmpty, ShouldEqual, batch.BoundaryEmpty)
				resolved, _ := equivalence.CountResolved(stepwise.Aggregates)
				So(resolved, ShouldEqual, batch.PositiveDelta)
			}
		}
	})
}

func randomRows(r *rand.Rand, rowNum, attrNum int) [][]int {
	rows := make([][]int, rowNum)
	for i := range rows {
		row := make([]int, attrNum+1)
		row[0] = r.Intn(3)
		for j := 1; j <= attrNum; j++ {
			row[j] = r.Intn(3)
		}
		rows[i] = row
	}
	return rows
}

// randomSubsets 随机的A和包含A的B
func randomSubsets(r *rand.Rand, attrNum int) ([]int, []int) {
	var a, b []int
	for attr := 1; attr <= attrNum; attr++ {
		switch r.Intn(3) {
		case 0:
			a = append(a, attr)
			b = append(b, attr)
		case 1:
			b = append(b, attr)
		}
	}
	return a, b
}

// owners 叶子等价类到所在聚合下标
func owners(aggregates []equivalence.Aggregate) map[*equivalence.EquivalenceClass]int {
	owner := make(map[*equivalence.EquivalenceClass]int)
	for i, agg := range aggregates {
		for _, ec := range agg.EquivalenceClasses() {
			owner[ec] = i
		}
	}
	return owner
}

// sameOwner 每个聚合的叶子是否都落在coarse的同一个聚合里
func sameOwner(fine []equivalence.Aggregate, coarse map[*equivalence.EquivalenceClass]int) bool {
	for _, agg := range fine {
		leaves := agg.EquivalenceClasses()
		for _, ec := range leaves[1:] {
			if coarse[ec] != coarse[leaves[0]] {
				return false
			}
		}
	}
	return true
}

func groups(aggregates []equivalence.Aggregate, subset []int) []equivalence.Aggregate {
	byKey, order := equivalence.Group(aggregates, attrs(subset...))
	result := make([]equivalence.Aggregate, 0, len(order))
	for _, key := range order {
		result = append(result, byKey[key])
	}
	return result
}

func TestRefinementMonotonicity(t *testing.T) {
	Convey("TestRefinementMonotonicity", t, func() {
		r := rand.New(rand.NewSource(7))
		for n := 0; n < 50; n++ {
			u := universe(randomRows(r, 30, 5))
			a, b := randomSubsets(r, 5)

			// 全划分：B的每个类都包含在A的某个类里
			coarse := owners(groups(u, a))
			So(sameOwner(groups(u, b), coarse), ShouldBeTrue)

			// 增量划分：在A的结果上再用B\A细分
			byA := Incremental(u, attrs(a...))
			rest := make([]int, 0, len(b))
			for _, attr := range b {
				if !slices.Contains(a, attr) {
					rest = append(rest, attr)
				}
			}
			byB := Incremental(byA.Aggregates, attrs(rest...))
			So(sameOwner(byB.Aggregates, owners(byA.Aggregates)), ShouldBeTrue)
			So(len(owners(byB.Aggregates)), ShouldEqual, len(owners(u)))
		}
	})
}

// leafTypes 每个叶子所在聚合的分类，Positive时带上决策值
func leafTypes(aggregates []equivalence.Aggregate) map[*equivalence.EquivalenceClass][2]int {
	types := make(map[*equivalence.EquivalenceClass][2]int)
	for _, agg := range aggregates {
		decision, _ := agg.Decision()
		for _, ec := range agg.EquivalenceClasses() {
			types[ec] = [2]int{int(agg.Type()), decision}
		}
	}
	return types
}

func TestBatchStepwiseClassification(t *testing.T) {
	Convey("TestBatchStepwiseClassification", t, func() {
		r := rand.New(rand.NewSource(13))
		for n := 0; n < 50; n++ {
			rows := randomRows(r, 30, 5)
			_, b := randomSubsets(r, 5)
			batch := Incremental(universe(rows), attrs(b...))

			order := slices.Clone(b)
			r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			singles := make([]instance.AttributeIterator, 0, len(order))
			for _, attr := range order {
				singles = append(singles, attrs(attr))
			}
			stepwise := Refine(universe(rows), singles...)

			So(stepwise.PositiveDelta, ShouldEqual, batch.PositiveDelta)
			So(stepwise.BoundaryEmpty, ShouldEqual, batch.BoundaryEmpty)
			// 两个universe的叶子是各自构造的，按FirstID对齐
			batchTypes := make(map[int][2]int)
			for ec, tp := range leafTypes(batch.Aggregates) {
				batchTypes[ec.FirstID()] = tp
			}
			stepTypes := make(map[int][2]int)
			for ec, tp := range leafTypes(stepwise.Aggregates) {
				stepTypes[ec.FirstID()] = tp
			}
			So(stepTypes, ShouldResemble, batchTypes)
			_, boundary := equivalence.CountResolved(stepwise.Aggregates)
			So(equivalence.AggregateSize(boundary), ShouldEqual, equivalence.AggregateSize(batch.Boundary))
		}
	})
}

func TestClassificationMonotonicity(t *testing.T) {
	Convey("TestClassificationMonotonicity", t, func() {
		// 边界聚合细分后，子聚合的实例合计不变，并且每个子聚合只会比父聚合更确定
		u := universe(conflictRows)
		byA3 := Incremental(u, attrs(3))
		So(byA3.BoundaryEmpty, ShouldBeFalse)
		total := 0
		for _, agg := range byA3.Aggregates {
			total += agg.InstanceSize()
		}
		So(total, ShouldEqual, 7)

		byA1 := Incremental(byA3.Boundary, attrs(1))
		for _, parent := range byA3.Boundary {
			So(parent.Type(), ShouldEqual, equivalence.Boundary)
		}
		So(byA1.PositiveDelta, ShouldEqual, 2)
		So(len(byA1.Boundary), ShouldEqual, 2)
	})
}

func TestIncrementalByStrategy(t *testing.T) {
	Convey("TestIncrementalByStrategy", t, func() {
		s := strategy.NewForward([]int{1, 2, 3}, strategy.FixedCapacity(2))
		result := IncrementalByStrategy(universe(sampleRows), s)
		So(result.BoundaryEmpty, ShouldBeTrue)
		So(result.PositiveDelta, ShouldEqual, 6)

		r := strategy.NewReverse([]int{1, 2, 3}, strategy.FixedCapacity(2))
		result = IncrementalByStrategy(universe(sampleRows), r)
		// 反向从a3开始取: {a3, a2}
		So(result.BoundaryEmpty, ShouldBeFalse)
	})
}

func TestTracerToSimpleGraph(t *testing.T) {
	Convey("TestTracerToSimpleGraph", t, func() {
		tracer := NewTracer()
		first := tracer.Incremental(universe(sampleRows), attrs(1))
		_ = tracer.Incremental(first.Aggregates, attrs(2))
		So(tracer.NodeNum(), ShouldEqual, 7)
		So(tracer.EdgeNum(), ShouldEqual, 6)

		outPath := filepath.Join(t.TempDir(), "partition.dot")
		So(tracer.ToSimpleGraph(outPath), ShouldBeNil)
		content, err := os.ReadFile(outPath)
		So(err, ShouldBeNil)
		So(strings.Contains(string(content), "digraph G"), ShouldBeTrue)
		So(strings.Contains(string(content), "->"), ShouldBeTrue)
	})
}
