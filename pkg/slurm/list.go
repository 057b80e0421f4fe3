package slurm

/*
#include <slurm/slurm.h>
#include <slurm/slurmdb.h>

// Not declared in the public headers but exported by libslurm; it is the
// standard element destructor for lists of malloc'd strings.
extern void slurm_destroy_char(void *object);

// cgo cannot take the address of a C function, so list construction with a
// registered element destructor goes through these helpers.
static List goslurm_list_create_strings(void) {
	return slurm_list_create(slurm_destroy_char);
}

static List goslurm_list_create_step_filters(void) {
	return slurm_list_create(slurmdb_destroy_selected_step);
}
*/
import "C"

import "unsafe"

// view is implemented by every borrowed wrapper type in this package: wrap
// builds a view of the same type around a foreign element pointer, raw
// hands the wrapped pointer back.
type view[T any] interface {
	wrap(p unsafe.Pointer) T
	raw() unsafe.Pointer
}

// owner is implemented by owned wrappers whose responsibility can be
// transferred into a foreign container.
type owner[T any] interface {
	release() unsafe.Pointer
}

func newStringList() C.List {
	return C.goslurm_list_create_strings()
}

func newStepFilterList() C.List {
	return C.goslurm_list_create_step_filters()
}

// List is a typed borrowed view over a Slurm list field owned by some
// containing structure. The foreign list is untyped; that every element
// points at what T expects is a convention established at construction
// sites. A null underlying handle reads exactly like an empty list.
type List[T view[T]] struct {
	handle *C.List
	create func() C.List
}

// Append moves item into the list, which owns the element's lifetime from
// then on. The foreign list itself is created lazily on first append,
// registering the element destructor for eventual cleanup. Only lists
// whose construction site registers a destructor support Append; appending
// to a read-only list view, such as a query result or a record's step
// list, panics.
func (l List[T]) Append(item owner[T]) {
	if *l.handle == nil {
		if l.create == nil {
			panic("slurm: Append on a read-only list view")
		}
		lst := l.create()
		if lst == nil {
			panic("slurm: list allocation failed")
		}
		*l.handle = lst
	}
	C.slurm_list_append(*l.handle, item.release())
}

// Count reports the number of elements; zero for a null handle.
func (l List[T]) Count() int {
	if l.handle == nil || *l.handle == nil {
		return 0
	}
	return int(C.slurm_list_count(*l.handle))
}

// Iter creates a cursor over the list. A null-handle list yields an
// already-exhausted iterator; cursor allocation failure on a live list is
// treated like allocator exhaustion.
func (l List[T]) Iter() *ListIterator[T] {
	if l.handle == nil || *l.handle == nil {
		return &ListIterator[T]{}
	}
	it := C.slurm_list_iterator_create(*l.handle)
	if it == nil {
		panic("slurm: list iterator allocation failed")
	}
	return &ListIterator[T]{c: it}
}

// ListIterator is an owned cursor over a List. It yields borrowed element
// views lazily, forward-only, and is not restartable. Closing it releases
// only the cursor, never the list or its elements.
type ListIterator[T view[T]] struct {
	c C.ListIterator
}

// Next advances the cursor, returning ok == false at end of sequence.
// Calling Next again after exhaustion keeps returning false.
func (it *ListIterator[T]) Next() (item T, ok bool) {
	if it.c == nil {
		return item, false
	}
	p := C.slurm_list_next(it.c)
	if p == nil {
		return item, false
	}
	return item.wrap(unsafe.Pointer(p)), true
}

// Close destroys the cursor. Idempotent.
func (it *ListIterator[T]) Close() error {
	if it.c != nil {
		C.slurm_list_iterator_destroy(it.c)
		it.c = nil
	}
	return nil
}

// OwnedList owns a foreign list handed back by a query. Closing it
// destroys the list and, through the element destructor the producing call
// registered, every element.
type OwnedList[T view[T]] struct {
	c C.List
}

// View returns the borrowed list, valid while the owner is open.
func (l *OwnedList[T]) View() List[T] {
	return List[T]{handle: &l.c}
}

// Iter creates a cursor over the owned list.
func (l *OwnedList[T]) Iter() *ListIterator[T] {
	return l.View().Iter()
}

// Count reports the number of elements.
func (l *OwnedList[T]) Count() int {
	return l.View().Count()
}

// Close destroys the list and its elements. Idempotent.
func (l *OwnedList[T]) Close() error {
	if l.c != nil {
		C.slurm_list_destroy(l.c)
		l.c = nil
	}
	return nil
}

// StringList is a typed borrowed view over a Slurm list of C strings, such
// as the userid filter of an accounting query.
type StringList struct {
	handle *C.List
}

// Append copies s into foreign memory and appends it; the list owns the
// copy. The foreign list is created lazily on first append.
func (l StringList) Append(s string) {
	if *l.handle == nil {
		lst := newStringList()
		if lst == nil {
			panic("slurm: list allocation failed")
		}
		*l.handle = lst
	}
	C.slurm_list_append(*l.handle, unsafe.Pointer(cstring(s)))
}

// Count reports the number of strings; zero for a null handle.
func (l StringList) Count() int {
	if l.handle == nil || *l.handle == nil {
		return 0
	}
	return int(C.slurm_list_count(*l.handle))
}

// Iter creates a cursor over the strings.
func (l StringList) Iter() *StringListIterator {
	if l.handle == nil || *l.handle == nil {
		return &StringListIterator{}
	}
	it := C.slurm_list_iterator_create(*l.handle)
	if it == nil {
		panic("slurm: list iterator allocation failed")
	}
	return &StringListIterator{c: it}
}

// StringListIterator is an owned cursor over a StringList.
type StringListIterator struct {
	c C.ListIterator
}

// Next advances the cursor, decoding the next string lossily.
func (it *StringListIterator) Next() (s string, ok bool) {
	if it.c == nil {
		return "", false
	}
	p := C.slurm_list_next(it.c)
	if p == nil {
		return "", false
	}
	return cstr((*C.char)(p)), true
}

// Close destroys the cursor. Idempotent.
func (it *StringListIterator) Close() error {
	if it.c != nil {
		C.slurm_list_iterator_destroy(it.c)
		it.c = nil
	}
	return nil
}
