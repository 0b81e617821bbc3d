package void

import (
	"reflect"
)

// Void
// 空值
//
// 用于在泛型代码中代替“没有返回值”。零大小，可比较，只有一个状态，任意两个 Void 都相等。
type Void struct{}

// Type
// Void 的 reflect.Type
var Type = reflect.TypeFor[Void]()

// Of
// 丢弃 v 并返回 Void。
//
// 当 v 本身是 Void 时，等同于复制。
func Of[T any](_ T) Void {
	return Void{}
}

// Discard
// 丢弃所有参数并返回 Void。
func Discard(_ ...any) Void {
	return Void{}
}

// Compare
// 三路比较，总是 0。
func Compare(_, _ Void) int {
	return 0
}

// Compare
// 三路比较，总是 0，其余比较均由此派生。
func (v Void) Compare(o Void) int {
	return Compare(v, o)
}

func (v Void) Equal(o Void) bool {
	return v.Compare(o) == 0
}

func (v Void) NotEqual(o Void) bool {
	return v.Compare(o) != 0
}

func (v Void) Less(o Void) bool {
	return v.Compare(o) < 0
}

func (v Void) LessEqual(o Void) bool {
	return v.Compare(o) <= 0
}

func (v Void) Greater(o Void) bool {
	return v.Compare(o) > 0
}

func (v Void) GreaterEqual(o Void) bool {
	return v.Compare(o) >= 0
}

func (v Void) String() string {
	return "void"
}
