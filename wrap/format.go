package wrap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"interpose/signature"
)

const (
	// maxValueLen caps how much of a rendered value appears verbatim.
	maxValueLen = 100
	// previewLen is how much of a large value survives as a preview.
	previewLen = 20
)

// CallSignature is the default call-record format: the callable's
// name followed by its positional values and name=value pairs.
//
//	Executing: resample(2, 'sdf', []int([0 1 2 3 4 5 6 7 8 9...), rate=10)
func CallSignature(name string, pos []any, named *signature.Args) string {
	parts := make([]string, 0, len(pos)+named.Len())

	for _, v := range pos {
		parts = append(parts, specialValue(v))
	}

	for _, p := range named.Pairs() {
		parts = append(parts, p.Name+"="+specialValue(p.Value))
	}

	return "Executing: " + name + "(" + strings.Join(parts, ", ") + ")"
}

// specialValue renders one argument value: strings quoted, anything
// rendering longer than maxValueLen collapsed to a type-annotated
// preview.
func specialValue(x any) string {
	if s, ok := x.(string); ok {
		return "'" + s + "'"
	}

	str := fmt.Sprint(x)
	if len(str) <= maxValueLen {
		return str
	}

	preview := spew.Sprintf("%v", x)
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}

	return typeName(x) + "(" + preview + "...)"
}

func typeName(x any) string {
	t := reflect.TypeOf(x)
	if t == nil {
		return "nil"
	}

	return t.String()
}
