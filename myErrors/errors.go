package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrArchiveFailed 表示删除前的归档快照未能写入对象存储
var ErrArchiveFailed = errors.New("archive: snapshot upload failed")
