package void

// Call
// 调用无参函数并返回结果。
func Call[R any](fn func() R) R {
	return fn()
}

// Call1
// 调用单参函数并返回结果。
func Call1[A any, R any](fn func(A) R, a A) R {
	return fn(a)
}

// Call2
// 调用双参函数并返回结果。
func Call2[A any, B any, R any](fn func(A, B) R, a A, b B) R {
	return fn(a, b)
}

// CallVoid
// 省略 Void 参数，调用无参函数。
func CallVoid[R any](fn func() R, _ Void) R {
	return fn()
}

// Run
// 调用无返回值的函数，以 Void 作为结果。
func Run(fn func()) Void {
	fn()
	return Void{}
}

// Run1
// 调用无返回值的单参函数，以 Void 作为结果。
func Run1[A any](fn func(A), a A) Void {
	fn(a)
	return Void{}
}

// Run2
// 调用无返回值的双参函数，以 Void 作为结果。
func Run2[A any, B any](fn func(A, B), a A, b B) Void {
	fn(a, b)
	return Void{}
}

// RunVoid
// 省略 Void 参数，调用无参且无返回值的函数。
func RunVoid(fn func(), _ Void) Void {
	fn()
	return Void{}
}

// Func0
// 把 func() 转为 func() Void 。
func Func0(fn func()) func() Void {
	return func() Void {
		return Run(fn)
	}
}

// Func1
// 把 func(A) 转为 func(A) Void 。
func Func1[A any](fn func(A)) func(A) Void {
	return func(a A) Void {
		return Run1(fn, a)
	}
}

// Func2
// 把 func(A, B) 转为 func(A, B) Void 。
func Func2[A any, B any](fn func(A, B)) func(A, B) Void {
	return func(a A, b B) Void {
		return Run2(fn, a, b)
	}
}

// Drop
// 把 func() R 转为 func(Void) R ，使无参函数可以接收 Void 。
func Drop[R any](fn func() R) func(Void) R {
	return func(v Void) R {
		return CallVoid(fn, v)
	}
}
