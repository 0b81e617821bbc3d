package void

import "github.com/brickingsoft/errors"

const (
	errMetaPkgKey  = "pkg"
	errMetaPkgVal  = "void"
	errMetaTypeKey = "type"
	errMetaArgsKey = "args"
)

var (
	// ErrNotFunc 不是函数或函数为 nil
	ErrNotFunc = errors.Define("not a function", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
	// ErrNotInvocable 参数不能调用该函数（包括省略 Void 参数后）
	ErrNotInvocable = errors.Define("function is not invocable with arguments", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
	// ErrResultType 结果类型不符
	ErrResultType = errors.Define("result type mismatch", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))

	errMultipleResults = errors.Define("function has more than one result")
)

// IsNotFunc
// 是否为 ErrNotFunc 错误
func IsNotFunc(err error) bool {
	return errors.Is(err, ErrNotFunc)
}

// IsNotInvocable
// 是否为 ErrNotInvocable 错误
func IsNotInvocable(err error) bool {
	return errors.Is(err, ErrNotInvocable)
}

// IsResultType
// 是否为 ErrResultType 错误
func IsResultType(err error) bool {
	return errors.Is(err, ErrResultType)
}
