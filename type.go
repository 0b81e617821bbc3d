package void

import (
	"reflect"

	"github.com/brickingsoft/errors"
)

// WrapType
// 把“无值”（nil）映射为 Type，其它类型原样返回。
func WrapType(t reflect.Type) reflect.Type {
	if t == nil {
		return Type
	}
	return t
}

// UnwrapType
// 把 Type（包括 *Void 等指针）映射为“无值”（nil），其它类型原样返回。
func UnwrapType(t reflect.Type) reflect.Type {
	if IsVoidType(t) {
		return nil
	}
	return t
}

// IsVoidType
// 去掉指针后是否为 Void。
func IsVoidType(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t == Type
}

// IsVoid
// T 是否为 Void 。
func IsVoid[T any]() bool {
	return IsVoidType(reflect.TypeFor[T]())
}

// ResultType
// 函数类型的真实返回类型，无返回值时为 nil 。
//
// 多个返回值没有可存储的单一结果，返回 ErrNotInvocable 。
func ResultType(fn reflect.Type) (reflect.Type, error) {
	if fn == nil || fn.Kind() != reflect.Func {
		return nil, errors.From(ErrNotFunc, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithMeta(errMetaTypeKey, typeName(fn)))
	}
	switch fn.NumOut() {
	case 0:
		return nil, nil
	case 1:
		return fn.Out(0), nil
	default:
		return nil, errors.From(ErrNotInvocable, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithMeta(errMetaTypeKey, typeName(fn)), errors.WithWrap(errMultipleResults))
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
