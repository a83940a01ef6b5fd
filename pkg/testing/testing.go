package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root so that logs/ and relative .env files resolve the
	// same way for every package under test
	//
	//   import (
	//     _ "liyu1981.xyz/factory-monitor-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
