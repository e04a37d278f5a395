//go:build cgo

// Package testalloc provides C allocations for tests. cgo cannot be used
// from _test.go files, so the fixtures live here.
package testalloc

/*
#include <stdlib.h>
#include <stdio.h>
#include <string.h>

struct test_struct {
	unsigned int first;
	unsigned int second;
};

static char *malloc_string(void) {
	char *data = (char *)malloc(128);
	memset(data, 0, 128);
	snprintf(data, 128, "test 123");
	return data;
}

static char *malloc_empty_string(void) {
	return (char *)calloc(1, 128);
}

static void malloc_struct(void **out) {
	struct test_struct *ts = (struct test_struct *)malloc(sizeof(struct test_struct));
	ts->first = 1;
	ts->second = 2;
	*out = ts;
}

static int malloc_ints(void **out, int n) {
	int *xs = (int *)malloc(sizeof(int) * n);
	for (int i = 0; i < n; i++) {
		xs[i] = i * i;
	}
	*out = xs;
	return n;
}
*/
import "C"

import "unsafe"

// Struct mirrors struct test_struct.
type Struct struct {
	First  uint32
	Second uint32
}

// String returns a malloc'd "test 123".
func String() uintptr {
	return uintptr(unsafe.Pointer(C.malloc_string()))
}

// EmptyString returns 128 zeroed malloc'd bytes.
func EmptyString() uintptr {
	return uintptr(unsafe.Pointer(C.malloc_empty_string()))
}

// FillStruct stores a malloc'd Struct{1, 2} into *out, the way a C API
// fills a caller's pointer-to-pointer.
func FillStruct(out *uintptr) {
	C.malloc_struct((*unsafe.Pointer)(unsafe.Pointer(out)))
}

// FillInts stores a malloc'd array of n ints holding i*i into *out.
func FillInts(out *uintptr, n int) int {
	return int(C.malloc_ints((*unsafe.Pointer)(unsafe.Pointer(out)), C.int(n)))
}
