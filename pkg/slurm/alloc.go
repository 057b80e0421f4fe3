package slurm

/*
#include <stdlib.h>
#include <slurm/slurm.h>

// The public headers do not expose the memory management entry points, but
// the API contract requires them: structures we build and hand to Slurm
// (and sub-fields of structures Slurm frees for us) must come from Slurm's
// own allocator.
extern void *slurm_try_xmalloc(size_t size, const char *file_name, int line, const char *func_name);
extern void slurm_xfree(void **pointer, const char *file_name, int line, const char *func_name);
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// allocTag identifies this binding in the allocator's internal accounting.
var allocTag = C.CString("goslurm")

// xmalloc requests size zeroed bytes from Slurm's allocator. Slurm has no
// graceful out-of-memory path, so exhaustion panics rather than returning
// an error.
func xmalloc(size uintptr) unsafe.Pointer {
	p := C.slurm_try_xmalloc(C.size_t(size), allocTag, 0, allocTag)
	if p == nil {
		panic(fmt.Sprintf("slurm: allocator could not provide %d bytes", size))
	}
	return p
}

// xfree hands *p back to Slurm's allocator and nulls it. No-op when the
// target is already null.
func xfree(p *unsafe.Pointer) {
	if p == nil || *p == nil {
		return
	}
	C.slurm_xfree(p, allocTag, 0, allocTag)
}

// xfreeChar releases a foreign-owned string field and nulls it.
func xfreeChar(field **C.char) {
	p := unsafe.Pointer(*field)
	xfree(&p)
	*field = nil
}

// allocZeroed allocates one zeroed T from the foreign allocator.
func allocZeroed[T any]() *T {
	var zero T
	return (*T)(xmalloc(unsafe.Sizeof(zero)))
}

// allocArray allocates count contiguous zeroed T.
func allocArray[T any](count int) *T {
	var zero T
	return (*T)(xmalloc(uintptr(count) * unsafe.Sizeof(zero)))
}

// cstring copies s into a NUL-terminated buffer owned by Slurm's
// allocator.
func cstring(s string) *C.char {
	p := xmalloc(uintptr(len(s)) + 1)
	buf := unsafe.Slice((*byte)(p), len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return (*C.char)(p)
}

// setCString replaces a foreign-owned string field, releasing any previous
// value first.
func setCString(field **C.char, s string) {
	xfreeChar(field)
	*field = cstring(s)
}

// allocStringArray builds a foreign-allocated char* array from strs. The
// element count is returned alongside the array because the fields these
// arrays land in carry an explicit length.
func allocStringArray(strs []string) (**C.char, uint32) {
	if len(strs) == 0 {
		return nil, 0
	}
	arr := (**C.char)(allocArray[*C.char](len(strs)))
	elems := unsafe.Slice(arr, len(strs))
	for i, s := range strs {
		elems[i] = cstring(s)
	}
	return arr, uint32(len(strs))
}

// freeStringArray releases each element and then the array itself, nulling
// the field. No-op when the field is already null.
func freeStringArray(field ***C.char, count uint32) {
	if field == nil || *field == nil {
		return
	}
	elems := unsafe.Slice(*field, count)
	for i := range elems {
		p := unsafe.Pointer(elems[i])
		xfree(&p)
		elems[i] = nil
	}
	p := unsafe.Pointer(*field)
	xfree(&p)
	*field = nil
}
