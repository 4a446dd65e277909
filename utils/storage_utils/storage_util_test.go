package storage_utils

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"roughset-reduct/reduct_config"
	"roughset-reduct/utils"
)

func TestGetColumnValueIndexes(t *testing.T) {
	Convey("TestGetColumnValueIndexes", t, func() {
		Convey("numbers are sorted by value", func() {
			indexes, index2Value := GetColumnValueIndexes([]string{"10", "2", "", "2", "1.5"})
			So(indexes, ShouldResemble, []int{2, 1, reduct_config.NilIndex, 1, 0})
			So(index2Value[0], ShouldEqual, "1.5")
			So(index2Value[2], ShouldEqual, "10")
			So(index2Value[reduct_config.NilIndex], ShouldEqual, "")
		})

		Convey("strings keep first seen order", func() {
			indexes, index2Value := GetColumnValueIndexes([]string{"b", "a", "b", "10", ""})
			So(indexes, ShouldResemble, []int{0, 1, 0, 2, reduct_config.NilIndex})
			So(len(index2Value), ShouldEqual, 4)
		})
	})
}

func TestEncodeTable(t *testing.T) {
	Convey("TestEncodeTable", t, func() {
		header := []string{"a1", "a2", "d"}
		records := [][]string{
			{"x", "3", "yes"},
			{"y", "1", "no"},
			{"x", " ", "yes"},
		}

		Convey("decision column goes first", func() {
			table, err := EncodeTable(header, records, "d")
			So(err, ShouldBeNil)
			So(table.Columns, ShouldResemble, []string{"d", "a1", "a2"})
			So(table.AttributeNum(), ShouldEqual, 2)
			So(table.ColumnName(2), ShouldEqual, "a2")
			So(table.Rows, ShouldResemble, [][]int{
				{0, 0, 1},
				{1, 1, 0},
				{0, 0, reduct_config.NilIndex},
			})
			So(table.Index2Value[2][1], ShouldEqual, "3")
		})

		Convey("decision column not found", func() {
			_, err := EncodeTable(header, records, "label")
			So(errors.Is(err, utils.ErrDecisionNotFound), ShouldBeTrue)
		})

		Convey("short row", func() {
			_, err := EncodeTable(header, [][]string{{"x", "1"}}, "d")
			So(errors.Is(err, utils.ErrParameter), ShouldBeTrue)
		})
	})
}
