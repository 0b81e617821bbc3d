package void

import (
	"errors"
)

const (
	defaultCacheSize = 1024
)

// Option
// 选项函数
type Option func(*Options) error

// Options
// 选项
type Options struct {
	// CacheSize
	// 解析缓存容量（按函数类型与参数类型）
	CacheSize int
	// DisableCache
	// 关闭解析缓存
	DisableCache bool
	// DisableFallback
	// 关闭省略 Void 参数的回退调用
	DisableFallback bool
}

// WithCacheSize
// 设置解析缓存容量，小于 1 时使用默认值。
func WithCacheSize(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			n = defaultCacheSize
		}
		o.CacheSize = n
		return nil
	}
}

// WithoutCache
// 关闭解析缓存，每次调用都重新解析。
func WithoutCache() Option {
	return func(o *Options) error {
		o.DisableCache = true
		return nil
	}
}

// WithFallback
// 是否启用回退调用（单个 Void 参数无法直接调用时，以无参调用）。默认启用。
func WithFallback(enabled bool) Option {
	return func(o *Options) error {
		o.DisableFallback = !enabled
		return nil
	}
}

// WithOptions
// 使用已有的 Options 。
func WithOptions(options Options) Option {
	return func(o *Options) error {
		if options.CacheSize < 0 {
			return errors.New("void: cache size cannot be negative")
		}
		if options.CacheSize == 0 {
			options.CacheSize = defaultCacheSize
		}
		*o = options
		return nil
	}
}
