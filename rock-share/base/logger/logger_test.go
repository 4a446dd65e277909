package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logFiles 不含指向最新文件的软链
func logFiles(dir, kind string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "reduct-test_"+kind+"_*.log"))
	So(err, ShouldBeNil)
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !strings.HasSuffix(m, "_last.log") {
			files = append(files, m)
		}
	}
	return files
}

func TestInitLogger(t *testing.T) {
	Convey("TestInitLogger", t, func() {
		dir := t.TempDir()
		defer zap.ReplaceGlobals(zap.NewNop())
		So(InitLogger(Options{Level: "info", ProjectName: "reduct-test", Path: dir}), ShouldBeNil)
		Infof("hello %s", "reduct")
		Debugf("not written")
		Errorf("bad %d", 1)
		Sync()

		infoFiles := logFiles(dir, "info")
		So(len(infoFiles), ShouldEqual, 1)
		data, err := os.ReadFile(infoFiles[0])
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "hello reduct")
		So(string(data), ShouldNotContainSubstring, "not written")

		errFiles := logFiles(dir, "err")
		So(len(errFiles), ShouldEqual, 1)
		data, err = os.ReadFile(errFiles[0])
		So(err, ShouldBeNil)
		So(string(data), ShouldNotContainSubstring, "hello reduct")
		So(string(data), ShouldContainSubstring, "bad 1")
	})
}

func TestParseLevel(t *testing.T) {
	Convey("TestParseLevel", t, func() {
		So(parseLevel("debug"), ShouldEqual, zapcore.DebugLevel)
		So(parseLevel("WARN"), ShouldEqual, zapcore.WarnLevel)
		So(parseLevel("error"), ShouldEqual, zapcore.ErrorLevel)
		So(parseLevel(""), ShouldEqual, zapcore.InfoLevel)
	})
}
