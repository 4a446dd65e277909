package equivalence

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"roughset-reduct/reduct/instance"
)

var sampleRows = [][]int{
	{0, 1, 1, 1},
	{0, 1, 1, 2},
	{1, 1, 2, 1},
	{1, 1, 2, 2},
	{1, 2, 1, 1},
	{0, 2, 2, 2},
}

func sampleInstances() []*instance.Instance {
	return instance.FromRows(sampleRows)
}

func attrs(a ...int) instance.AttributeIterator {
	return instance.NewArrayIterator(a)
}

// leaf 直接构造叶子，decision为-1时表示不一致
func leaf(decision int, values ...int) *EquivalenceClass {
	if decision < 0 {
		return NewEquivalenceClass(append([]int{0}, values...), false, 2)
	}
	return NewEquivalenceClass(append([]int{decision}, values...), true, 1)
}

func TestBuild(t *testing.T) {
	Convey("TestBuild", t, func() {
		Convey("full attribute set", func() {
			classes := Build(sampleInstances(), attrs(1, 2, 3))
			So(len(classes), ShouldEqual, 6)
			for _, ec := range classes {
				So(ec.InstanceCount(), ShouldEqual, 1)
				So(ec.Type(), ShouldEqual, Positive)
				_, ok := ec.Decision()
				So(ok, ShouldBeTrue)
			}
		})

		Convey("single attribute", func() {
			classes := Sorted(Build(sampleInstances(), attrs(1)))
			So(len(classes), ShouldEqual, 2)
			So(classes[0].InstanceCount(), ShouldEqual, 4)
			So(classes[1].InstanceCount(), ShouldEqual, 2)
			So(classes[0].FirstID(), ShouldEqual, 0)
			So(classes[1].FirstID(), ShouldEqual, 4)
			for _, ec := range classes {
				So(ec.Consistent(), ShouldBeFalse)
				_, ok := ec.Decision()
				So(ok, ShouldBeFalse)
			}
			So(UniverseSize(classes), ShouldEqual, 6)
			So(NewUniverse(classes).Type(), ShouldEqual, Negative)
		})

		Convey("missing values are ordinary values", func() {
			instances := instance.FromRows([][]int{{0, -1, 1}, {1, -1, 1}, {0, 1, 1}})
			So(instances[0].IsMissing(1), ShouldBeTrue)
			So(instances[2].IsMissing(1), ShouldBeFalse)
			classes := Build(instances, attrs(1, 2))
			So(len(classes), ShouldEqual, 2)
		})
	})
}

func TestTupleKey(t *testing.T) {
	Convey("TestTupleKey", t, func() {
		values := []int{0, 12, 3, -1}
		So(TupleKey(values, attrs(1, 2, 3)), ShouldEqual, "12|3|-1|")
		So(TupleKey(values, attrs(3, 1)), ShouldEqual, "-1|12|")
		So(TupleKey(values, attrs()), ShouldEqual, "")
		// 1|23 和 12|3 不能相同
		So(TupleKey([]int{0, 1, 23}, attrs(1, 2)), ShouldNotEqual, TupleKey([]int{0, 12, 3}, attrs(1, 2)))
	})
}

func TestMergeAndTypeChanged(t *testing.T) {
	Convey("TestMergeAndTypeChanged", t, func() {
		Convey("same decision stays consistent", func() {
			ec := leaf(1, 1, 1)
			So(ec.MergeAndTypeChanged(leaf(1, 1, 2)), ShouldBeFalse)
			So(ec.Consistent(), ShouldBeTrue)
			So(ec.InstanceCount(), ShouldEqual, 2)
		})

		Convey("different decision flips once", func() {
			ec := leaf(1, 1, 1)
			So(ec.MergeAndTypeChanged(leaf(0, 1, 2)), ShouldBeTrue)
			So(ec.Consistent(), ShouldBeFalse)
			So(ec.MergeAndTypeChanged(leaf(1, 1, 3)), ShouldBeFalse)
			So(ec.Consistent(), ShouldBeFalse)
		})

		Convey("merging an inconsistent class", func() {
			ec := leaf(1, 1, 1)
			So(ec.MergeAndTypeChanged(leaf(-1, 1, 2)), ShouldBeTrue)
			So(ec.InstanceCount(), ShouldEqual, 3)
		})
	})
}

func TestProject(t *testing.T) {
	Convey("TestProject", t, func() {
		leaves := Sorted(Build(sampleInstances(), attrs(1, 2, 3)))
		projected, changed := Project(leaves, attrs(1))
		So(len(projected), ShouldEqual, 2)
		So(changed, ShouldEqual, 2)
		for _, ec := range leaves {
			So(ec.Consistent(), ShouldBeTrue)
			So(ec.InstanceCount(), ShouldEqual, 1)
		}

		projected, changed = Project(leaves, attrs(1, 2))
		So(len(projected), ShouldEqual, 4)
		So(changed, ShouldEqual, 0)
		So(UniverseSize(Sorted(projected)), ShouldEqual, 6)
	})
}

func TestClassification(t *testing.T) {
	Convey("TestClassification", t, func() {
		Convey("positive receives a different decision", func() {
			rec := NewRoughEquivalenceClass()
			rec.AddItem(leaf(1, 1))
			So(rec.Type(), ShouldEqual, Positive)
			d, ok := rec.Decision()
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, 1)
			rec.AddItem(leaf(0, 2))
			So(rec.Type(), ShouldEqual, Boundary)
			_, ok = rec.Decision()
			So(ok, ShouldBeFalse)
		})

		Convey("positive receives an inconsistent class", func() {
			rec := NewRoughEquivalenceClass()
			rec.AddItem(leaf(1, 1))
			rec.AddItem(leaf(-1, 2))
			So(rec.Type(), ShouldEqual, Boundary)
		})

		Convey("negative receives a consistent class", func() {
			rec := NewRoughEquivalenceClass()
			rec.AddItem(leaf(-1, 1))
			rec.AddItem(leaf(-1, 2))
			So(rec.Type(), ShouldEqual, Negative)
			rec.AddItem(leaf(0, 3))
			So(rec.Type(), ShouldEqual, Boundary)
		})

		Convey("boundary never goes back", func() {
			rec := NewRoughEquivalenceClass()
			rec.AddItem(leaf(1, 1))
			rec.AddItem(leaf(0, 2))
			for _, ec := range []*EquivalenceClass{leaf(1, 3), leaf(0, 4), leaf(-1, 5)} {
				rec.AddItem(ec)
				So(rec.Type(), ShouldEqual, Boundary)
			}
			So(rec.InstanceSize(), ShouldEqual, 1+1+1+1+2)
			So(rec.MemberCount(), ShouldEqual, 5)
		})

		Convey("order does not matter", func() {
			members := []*EquivalenceClass{leaf(1, 1), leaf(1, 2), leaf(-1, 3), leaf(1, 4)}
			orders := [][]int{{0, 1, 2, 3}, {2, 0, 1, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}}
			for _, order := range orders {
				rec := NewRoughEquivalenceClass()
				nec := NewNestedEquivalenceClass(nil)
				for _, i := range order {
					rec.AddItem(members[i])
					nec.AddItem(members[i])
				}
				So(rec.Type(), ShouldEqual, Boundary)
				So(nec.Type(), ShouldEqual, Boundary)
				So(rec.InstanceSize(), ShouldEqual, 5)
				So(nec.InstanceSize(), ShouldEqual, 5)
			}
			for _, order := range orders {
				rec := NewRoughEquivalenceClass()
				for _, i := range order {
					if i != 2 {
						rec.AddItem(members[i])
					}
				}
				So(rec.Type(), ShouldEqual, Positive)
			}
		})
	})
}

func TestClone(t *testing.T) {
	Convey("TestClone", t, func() {
		rec := NewRoughEquivalenceClass()
		rec.AddItem(leaf(1, 1))
		clone := rec.Clone()
		clone.AddItem(leaf(0, 2))
		So(clone.Type(), ShouldEqual, Boundary)
		So(rec.Type(), ShouldEqual, Positive)
		So(rec.MemberCount(), ShouldEqual, 1)
		// 叶子也是拷贝
		So(clone.EquivalenceClasses()[0], ShouldNotPointTo, rec.EquivalenceClasses()[0])

		nec := NewNestedEquivalenceClass([]int{1})
		nec.AddItem(leaf(1, 1))
		inner := NewNestedEquivalenceClass([]int{1, 2})
		inner.AddItem(leaf(1, 1, 1))
		nec.AddMember(Nested(inner))
		necClone := nec.Clone()
		necClone.AddItem(leaf(0, 1))
		So(nec.Type(), ShouldEqual, Positive)
		So(nec.MemberCount(), ShouldEqual, 2)
		So(necClone.MemberCount(), ShouldEqual, 3)
		So(necClone.(*NestedEquivalenceClass).Members()[1].Nested(), ShouldNotPointTo, inner)

		aggs := CloneAll([]Aggregate{rec, nec})
		So(len(aggs), ShouldEqual, 2)
		So(aggs[0], ShouldNotPointTo, rec)
	})
}

func TestNestedEquivalenceClass(t *testing.T) {
	Convey("TestNestedEquivalenceClass", t, func() {
		nec := NewNestedEquivalenceClass([]int{3, 1})
		So(nec.Attributes(), ShouldResemble, []int{1, 3})
		So(nec.Covers([]int{1}), ShouldBeTrue)
		So(nec.Covers([]int{3, 1}), ShouldBeTrue)
		So(nec.Covers([]int{2}), ShouldBeFalse)
		So(nec.Covers(nil), ShouldBeTrue)

		spawned := nec.Spawn([]int{2, 3}).(*NestedEquivalenceClass)
		So(spawned.Attributes(), ShouldResemble, []int{1, 2, 3})
		So(spawned.MemberCount(), ShouldEqual, 0)

		So(NewRoughEquivalenceClass().Spawn([]int{1}), ShouldHaveSameTypeAs, &RoughEquivalenceClass{})

		Convey("covering", func() {
			_, ok := nec.Covering([]int{1})
			So(ok, ShouldBeFalse)
			inner := NewNestedEquivalenceClass([]int{1, 2})
			inner.AddItem(leaf(1, 2, 5))
			nec.AddMember(Nested(inner))
			nec.AddItem(leaf(0, 2, 6))
			m, ok := nec.Covering([]int{3})
			So(ok, ShouldBeTrue)
			So(m.Kind(), ShouldEqual, NestedMember)
			So(m.Representative().AttrValues(), ShouldResemble, []int{1, 2, 5})
			_, ok = nec.Covering([]int{2})
			So(ok, ShouldBeFalse)

			rec := NewRoughEquivalenceClass()
			rec.AddItem(leaf(1, 1))
			_, ok = rec.Covering(nil)
			So(ok, ShouldBeFalse)
			So(Leaf(leaf(1, 7)).Representative().AttrValues(), ShouldResemble, []int{1, 7})
		})
	})
}

func TestGroup(t *testing.T) {
	Convey("TestGroup", t, func() {
		leaves := Sorted(Build(sampleInstances(), attrs(1, 2, 3)))
		universe := []Aggregate{NewUniverse(leaves)}

		byA1A2, order := Group(universe, attrs(1, 2))
		So(len(order), ShouldEqual, 4)
		for _, key := range order {
			So(byA1A2[key].Type(), ShouldEqual, Positive)
			So(byA1A2[key].Attributes(), ShouldResemble, []int{1, 2})
			for _, m := range byA1A2[key].Members() {
				So(m.Kind(), ShouldEqual, LeafMember)
			}
		}

		// 已经按{1,2}分好的类再按{1}分组时整体嵌进去
		nested := make([]Aggregate, 0, len(order))
		for _, key := range order {
			nested = append(nested, byA1A2[key])
		}
		byA1, order := Group(nested, attrs(1))
		So(len(order), ShouldEqual, 2)
		first := byA1[order[0]]
		So(first.MemberCount(), ShouldEqual, 4)
		So(first.InstanceSize(), ShouldEqual, 4)
		So(len(first.Members()), ShouldEqual, 2)
		for _, m := range first.Members() {
			So(m.Kind(), ShouldEqual, NestedMember)
			So(m.Nested(), ShouldNotBeNil)
			So(m.Leaf(), ShouldBeNil)
		}
		So(first.Type(), ShouldEqual, Boundary)
		So(len(first.EquivalenceClasses()), ShouldEqual, 4)

		// 没有覆盖的属性时只能按叶子分
		byA3, order := Group(nested, attrs(3))
		So(len(order), ShouldEqual, 2)
		for _, m := range byA3[order[0]].Members() {
			So(m.Kind(), ShouldEqual, LeafMember)
		}

		resolved, boundary := CountResolved(nested)
		So(resolved, ShouldEqual, 6)
		So(len(boundary), ShouldEqual, 0)
		resolved, boundary = CountResolved([]Aggregate{first, nested[0]})
		So(resolved, ShouldEqual, 2)
		So(len(boundary), ShouldEqual, 1)
	})
}
