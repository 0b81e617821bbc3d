package void

import (
	"reflect"
	"strings"
	"sync"

	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/void/pkg/counter"
	"github.com/brickingsoft/void/pkg/spin"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type shape int

const (
	// 以给定参数调用
	shapeDirect shape = iota
	// 省略唯一的 Void 参数，以无参调用
	shapeDrop
)

type plan struct {
	shape  shape
	result reflect.Type
	err    error
}

type planKey struct {
	fn   reflect.Type
	args reflect.Type
}

// untypedNil 在参数签名中代表无类型的 nil 参数
type untypedNil struct{}

var untypedNilType = reflect.TypeFor[untypedNil]()

// Stats
// 解析缓存统计
type Stats struct {
	// Hits 缓存命中次数
	Hits int64
	// Misses 缓存未命中（即解析）次数
	Misses int64
	// Entries 当前缓存条目数
	Entries int
}

// Dispatcher
// 统一调用器
//
// 根据函数类型与参数类型选择调用方式：
//
// 1. 参数可以直接调用时，直接调用；
//
// 2. 只有一个 Void 参数且不能直接调用时，省略该参数以无参调用。
//
// 无返回值的函数以 Void 作为结果。解析结果按类型缓存，并发安全。
type Dispatcher struct {
	fallback bool
	locker   sync.Locker
	cache    *simplelru.LRU[planKey, plan]
	hits     *counter.Counter
	misses   *counter.Counter
}

// NewDispatcher
// 创建统一调用器
func NewDispatcher(options ...Option) (*Dispatcher, error) {
	opts := Options{
		CacheSize:       defaultCacheSize,
		DisableCache:    false,
		DisableFallback: false,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if optErr := option(&opts); optErr != nil {
			return nil, errors.New("new dispatcher failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(optErr))
		}
	}
	d := &Dispatcher{
		fallback: !opts.DisableFallback,
		locker:   spin.New(),
		cache:    nil,
		hits:     counter.New(),
		misses:   counter.New(),
	}
	if !opts.DisableCache {
		cache, cacheErr := simplelru.NewLRU[planKey, plan](opts.CacheSize, nil)
		if cacheErr != nil {
			return nil, errors.New("new dispatcher failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(cacheErr))
		}
		d.cache = cache
	}
	return d, nil
}

// Invoke
// 统一调用 fn 。
//
// 无返回值时结果为 Void{} ，否则为唯一的返回值。fn 不能以 args 调用时返回 ErrNotInvocable ，且 fn 不会被执行。
// fn 中的 panic 不会被捕获。
func (d *Dispatcher) Invoke(fn any, args ...any) (result any, err error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		err = errors.From(ErrNotFunc, errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithMeta(errMetaTypeKey, typeName(reflect.TypeOf(fn))))
		return
	}
	ft := fv.Type()
	types := make([]reflect.Type, len(args))
	for i, arg := range args {
		types[i] = reflect.TypeOf(arg)
	}
	p := d.lookup(ft, types)
	if p.err != nil {
		err = p.err
		return
	}
	var in []reflect.Value
	if p.shape == shapeDirect {
		in = argValues(ft, args)
	}
	out := fv.Call(in)
	if p.result == nil {
		result = Void{}
		return
	}
	result = out[0].Interface()
	return
}

// ResultOf
// Invoke 的结果类型，并经过 UnwrapType ，即无返回值（或返回 Void）时为 nil 。
//
// args 中的 nil 代表无类型的 nil 参数。不能调用时返回与 Invoke 相同的错误。
func (d *Dispatcher) ResultOf(fn reflect.Type, args ...reflect.Type) (reflect.Type, error) {
	p := d.lookup(fn, args)
	if p.err != nil {
		return nil, p.err
	}
	return UnwrapType(WrapType(p.result)), nil
}

// Invocable
// fn 是否可以以 args 统一调用。
func (d *Dispatcher) Invocable(fn reflect.Type, args ...reflect.Type) bool {
	_, err := d.ResultOf(fn, args...)
	return err == nil
}

// Stats
// 缓存统计
func (d *Dispatcher) Stats() Stats {
	stats := Stats{
		Hits:   d.hits.Value(),
		Misses: d.misses.Value(),
	}
	if d.cache != nil {
		d.locker.Lock()
		stats.Entries = d.cache.Len()
		d.locker.Unlock()
	}
	return stats
}

// Purge
// 清空缓存与统计
func (d *Dispatcher) Purge() {
	if d.cache != nil {
		d.locker.Lock()
		d.cache.Purge()
		d.locker.Unlock()
	}
	d.hits.Reset()
	d.misses.Reset()
}

func (d *Dispatcher) lookup(fn reflect.Type, args []reflect.Type) plan {
	if d.cache == nil || fn == nil {
		d.misses.Incr()
		return d.resolve(fn, args)
	}
	key := planKey{fn: fn, args: signatureOf(args)}
	d.locker.Lock()
	p, ok := d.cache.Get(key)
	d.locker.Unlock()
	if ok {
		d.hits.Incr()
		return p
	}
	d.misses.Incr()
	p = d.resolve(fn, args)
	d.locker.Lock()
	d.cache.Add(key, p)
	d.locker.Unlock()
	return p
}

func (d *Dispatcher) resolve(fn reflect.Type, args []reflect.Type) plan {
	result, err := ResultType(fn)
	if err != nil {
		return plan{err: err}
	}
	if accepts(fn, args) {
		return plan{shape: shapeDirect, result: result}
	}
	if d.fallback && len(args) == 1 && IsVoidType(args[0]) && accepts(fn, nil) {
		return plan{shape: shapeDrop, result: result}
	}
	err = errors.From(
		ErrNotInvocable,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaTypeKey, fn.String()),
		errors.WithMeta(errMetaArgsKey, argsName(args)),
	)
	return plan{err: err}
}

func accepts(fn reflect.Type, args []reflect.Type) bool {
	n := fn.NumIn()
	if fn.IsVariadic() {
		if len(args) < n-1 {
			return false
		}
	} else if len(args) != n {
		return false
	}
	for i, arg := range args {
		if !assignable(arg, paramType(fn, i)) {
			return false
		}
	}
	return true
}

func paramType(fn reflect.Type, i int) reflect.Type {
	n := fn.NumIn()
	if fn.IsVariadic() && i >= n-1 {
		return fn.In(n - 1).Elem()
	}
	return fn.In(i)
}

func assignable(arg reflect.Type, param reflect.Type) bool {
	if arg == nil {
		return nilable(param)
	}
	return arg.AssignableTo(param)
}

func argValues(fn reflect.Type, args []any) []reflect.Value {
	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			values[i] = reflect.Zero(paramType(fn, i))
			continue
		}
		values[i] = reflect.ValueOf(arg)
	}
	return values
}

func signatureOf(args []reflect.Type) reflect.Type {
	in := make([]reflect.Type, len(args))
	for i, arg := range args {
		if arg == nil {
			arg = untypedNilType
		}
		in[i] = arg
	}
	return reflect.FuncOf(in, nil, false)
}

func argsName(args []reflect.Type) string {
	b := strings.Builder{}
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typeName(arg))
	}
	b.WriteByte(')')
	return b.String()
}
