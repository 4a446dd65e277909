package enum

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"roughset-reduct/utils"
)

func TestParseDirection(t *testing.T) {
	Convey("TestParseDirection", t, func() {
		d, err := ParseDirection("REVERSE")
		So(err, ShouldBeNil)
		So(d, ShouldEqual, Reverse)
		d, err = ParseDirection(" forward")
		So(err, ShouldBeNil)
		So(d, ShouldEqual, Forward)
		for _, p := range []string{"sideways", ""} {
			_, err = ParseDirection(p)
			So(errors.Is(err, utils.ErrParameter), ShouldBeTrue)
		}
	})
}

func TestParseMeasure(t *testing.T) {
	Convey("TestParseMeasure", t, func() {
		m, err := ParseMeasure("Positive")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, MeasurePositive)
		m, err = ParseMeasure("dependency")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, MeasureDependency)
		_, err = ParseMeasure("entropy")
		So(errors.Is(err, utils.ErrParameter), ShouldBeTrue)
	})
}
