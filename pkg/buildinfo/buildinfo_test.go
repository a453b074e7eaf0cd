package buildinfo

import (
	"fmt"
	"runtime"
	"testing"

	. "src.prismdeck.dev/pkg/prog/progtest"
	"src.prismdeck.dev/pkg/testutil"
)

func TestProgram(t *testing.T) {
	testutil.Set(t, &VersionSuffix, "-test")
	testutil.Set(t, &Reproducible, "true")
	full := Version + "-test"

	Test(t, &Program{},
		ThatPreso("-version").WritesStdout(full+"\n"),
		ThatPreso("-version", "-json").WritesStdout(`"`+full+`"`+"\n"),

		ThatPreso("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: true\n",
				full, runtime.Version())),
		ThatPreso("-buildinfo", "-json").WritesStdout(
			fmt.Sprintf(`{"version":%q,"goversion":%q,"reproducible":true}`+"\n",
				full, runtime.Version())),

		ThatPreso().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestValue(t *testing.T) {
	testutil.Set(t, &VersionSuffix, "")
	testutil.Set(t, &Reproducible, "false")
	got := Value()
	if got.Version != Version || got.Reproducible || got.GoVersion != runtime.Version() {
		t.Errorf("Value() = %+v", got)
	}
}
