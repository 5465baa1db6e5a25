// Package cache provides a small generic LRU cache.
//
// It backs per-window lookups whose results are stable for the lifetime of
// a rendering context, such as graphics entry point addresses:
//
//	procs := cache.New[string, unsafe.Pointer](256)
//	fn, ok := procs.Get("glClear")
//	if !ok {
//	    if fn = resolve("glClear"); fn != nil {
//	        procs.Set("glClear", fn)
//	    }
//	}
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
