package void

import (
	"reflect"

	"github.com/brickingsoft/errors"
)

var defaultDispatcher = mustNewDispatcher()

func mustNewDispatcher() *Dispatcher {
	d, err := NewDispatcher()
	if err != nil {
		panic(err)
	}
	return d
}

// Default
// 默认的统一调用器
func Default() *Dispatcher {
	return defaultDispatcher
}

// Invoke
// 使用默认调用器统一调用 fn ，见 Dispatcher.Invoke 。
func Invoke(fn any, args ...any) (any, error) {
	return defaultDispatcher.Invoke(fn, args...)
}

// InvokeAs
// 使用默认调用器统一调用 fn ，并把结果转为 R 。
func InvokeAs[R any](fn any, args ...any) (R, error) {
	return InvokeWith[R](defaultDispatcher, fn, args...)
}

// InvokeWith
// 使用 d 统一调用 fn ，并把结果转为 R 。
//
// 结果不是 R 时返回 ErrResultType 。
func InvokeWith[R any](d *Dispatcher, fn any, args ...any) (r R, err error) {
	v, invokeErr := d.Invoke(fn, args...)
	if invokeErr != nil {
		err = invokeErr
		return
	}
	if v == nil {
		if nilable(reflect.TypeFor[R]()) {
			return
		}
		err = errors.From(ErrResultType, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithMeta(errMetaTypeKey, "nil"))
		return
	}
	ok := false
	if r, ok = v.(R); !ok {
		err = errors.From(ErrResultType, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithMeta(errMetaTypeKey, typeName(reflect.TypeOf(v))))
		return
	}
	return
}

// ResultOf
// 使用默认调用器查询结果类型，见 Dispatcher.ResultOf 。
func ResultOf(fn reflect.Type, args ...reflect.Type) (reflect.Type, error) {
	return defaultDispatcher.ResultOf(fn, args...)
}

// ResultFor
// 同 ResultOf ，函数类型由 F 给出。
func ResultFor[F any](args ...reflect.Type) (reflect.Type, error) {
	return defaultDispatcher.ResultOf(reflect.TypeFor[F](), args...)
}

// Invocable
// 使用默认调用器判断是否可以统一调用，见 Dispatcher.Invocable 。
func Invocable(fn reflect.Type, args ...reflect.Type) bool {
	return defaultDispatcher.Invocable(fn, args...)
}

// InvocableFor
// 同 Invocable ，函数类型由 F 给出。
func InvocableFor[F any](args ...reflect.Type) bool {
	return defaultDispatcher.Invocable(reflect.TypeFor[F](), args...)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
