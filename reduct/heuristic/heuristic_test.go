package heuristic

import (
	"errors"
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set"
	. "github.com/smartystreets/goconvey/convey"
	"roughset-reduct/reduct/calculator"
	"roughset-reduct/reduct/core"
	"roughset-reduct/reduct/equivalence"
	"roughset-reduct/reduct/instance"
	"roughset-reduct/reduct/strategy"
	"roughset-reduct/rock-share/global/enum"
	"roughset-reduct/utils"
)

var sampleRows = [][]int{
	{0, 1, 1, 1},
	{0, 1, 1, 2},
	{1, 1, 2, 1},
	{1, 1, 2, 2},
	{1, 2, 1, 1},
	{0, 2, 2, 2},
}

func universe(rows [][]int) ([]equivalence.Aggregate, []int) {
	instances := instance.FromRows(rows)
	attrs := instance.ConditionAttributes(instances[0].AttributeNum())
	classes := equivalence.Sorted(equivalence.Build(instances, instance.NewArrayIterator(attrs)))
	return []equivalence.Aggregate{equivalence.NewUniverse(classes)}, attrs
}

func randomRows(seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	rows := make([][]int, 60)
	for i := range rows {
		row := make([]int, 10)
		row[0] = r.Intn(3)
		for j := 1; j < len(row); j++ {
			row[j] = r.Intn(3)
		}
		rows[i] = row
	}
	return rows
}

func serialOptions() Options {
	opts := DefaultOptions()
	opts.WorkerNum = 1
	return opts
}

func TestSearch(t *testing.T) {
	Convey("TestSearch", t, func() {
		Convey("core is already a reduct", func() {
			u, attrs := universe(sampleRows)
			result, err := Search(u, attrs, []int{1, 2}, serialOptions())
			So(err, ShouldBeNil)
			So(result.Reduct, ShouldResemble, []int{1, 2})
			So(result.Dependency, ShouldAlmostEqual, 1.0)
			So(result.FullDependency, ShouldAlmostEqual, 1.0)
			So(result.Evaluations, ShouldEqual, 0)
		})

		Convey("ties go to the smaller attribute", func() {
			rows := make([][]int, len(sampleRows))
			for i, row := range sampleRows {
				rows[i] = append(append([]int{}, row...), row[1])
			}
			u, attrs := universe(rows)
			result, err := Search(u, attrs, []int{2}, serialOptions())
			So(err, ShouldBeNil)
			So(result.Reduct, ShouldResemble, []int{2, 1})
			So(result.Evaluations, ShouldEqual, 3)
		})

		Convey("without core", func() {
			u, attrs := universe(sampleRows)
			result, err := Search(u, attrs, nil, serialOptions())
			So(err, ShouldBeNil)
			So(result.Dependency, ShouldAlmostEqual, 1.0)
			So(len(result.Reduct), ShouldBeGreaterThanOrEqualTo, 2)
		})

		Convey("core attribute out of range", func() {
			u, attrs := universe(sampleRows)
			_, err := Search(u, attrs, []int{5}, serialOptions())
			So(errors.Is(err, utils.ErrPrecondition), ShouldBeTrue)
		})

		Convey("shared cache", func() {
			u, attrs := universe(sampleRows)
			opts := serialOptions()
			opts.Cache = calculator.NewCache()
			first, err := Search(u, attrs, nil, opts)
			So(err, ShouldBeNil)
			So(first.Evaluations, ShouldBeGreaterThan, 0)
			second, err := Search(u, attrs, nil, opts)
			So(err, ShouldBeNil)
			So(second.Evaluations, ShouldEqual, 0)
			So(second.CacheHits, ShouldEqual, first.Evaluations)
			So(second.Reduct, ShouldResemble, first.Reduct)
		})
	})
}

func TestSearchRandomTables(t *testing.T) {
	Convey("TestSearchRandomTables", t, func() {
		for seed := int64(1); seed <= 5; seed++ {
			u, attrs := universe(randomRows(seed))
			coreResult, err := core.Compute(u, attrs, strategy.SqrtCapacity)
			So(err, ShouldBeNil)

			serial, err := Search(u, attrs, coreResult.Core, serialOptions())
			So(err, ShouldBeNil)
			So(serial.Dependency, ShouldAlmostEqual, serial.FullDependency)
			for _, attr := range coreResult.Core {
				So(serial.Reduct, ShouldContain, attr)
			}

			parallelOpts := DefaultOptions()
			parallelOpts.WorkerNum = 4
			parallelOpts.MaxParallelCandidates = 0
			parallel, err := Search(u, attrs, coreResult.Core, parallelOpts)
			So(err, ShouldBeNil)
			So(parallel.Reduct, ShouldResemble, serial.Reduct)

			reverseOpts := serialOptions()
			reverseOpts.Direction = enum.Reverse
			reverse, err := Search(u, attrs, coreResult.Core, reverseOpts)
			So(err, ShouldBeNil)
			So(reverse.Reduct, ShouldResemble, serial.Reduct)

			inspection, err := Inspect(u, serial.Reduct, coreResult.CoreSet(), serialOptions())
			So(err, ShouldBeNil)
			for _, attr := range inspection.Reduct {
				redundant, err := calculator.IsRedundant(u, inspection.Reduct, attr, 0)
				So(err, ShouldBeNil)
				So(redundant, ShouldBeFalse)
			}
			dep, err := calculator.DependencyDegree(u, instance.NewArrayIterator(inspection.Reduct), 60)
			So(err, ShouldBeNil)
			So(dep, ShouldAlmostEqual, serial.FullDependency)
		}
	})
}

func TestInspect(t *testing.T) {
	Convey("TestInspect", t, func() {
		u, _ := universe(sampleRows)
		Convey("redundant attribute removed", func() {
			inspection, err := Inspect(u, []int{1, 2, 3}, nil, serialOptions())
			So(err, ShouldBeNil)
			So(inspection.Reduct, ShouldResemble, []int{1, 2})
			So(inspection.Removed, ShouldResemble, []int{3})
		})

		Convey("core attributes are kept", func() {
			// {1,2,3}上去掉3不影响，core里写了3就不检查
			inspection, err := Inspect(u, []int{3, 1, 2}, mapset.NewSet(3), serialOptions())
			So(err, ShouldBeNil)
			So(inspection.Reduct, ShouldResemble, []int{1, 2, 3})
			So(len(inspection.Removed), ShouldEqual, 0)
		})
	})
}
