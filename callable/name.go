package callable

import (
	"reflect"
	"runtime"
	"strings"

	"interpose/internal/common"
	"interpose/utils"
)

// funcName recovers the package alias and bare name of a function
// value from its program counter, e.g. "strconv" and "Itoa".
func funcName(fn reflect.Value) (pkg, name string) {
	pc := runtime.FuncForPC(fn.Pointer())
	if pc == nil {
		return "", "func"
	}

	// "interpose/callable.Func" -> "callable.Func"
	full := common.PkgAlias(pc.Name())
	if !strings.Contains(full, ".") {
		return "", full
	}

	pkg, name = utils.Unpack2(strings.SplitN(full, ".", 2))

	return pkg, name
}
