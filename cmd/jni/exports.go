// Command jni builds the shared library loaded by the managed runtime:
//
//	go build -buildmode=c-shared -o libmirrorlog.so ./cmd/jni
//
// Strings arrive as UTF-16 code units with an explicit length. The JNI
// entry points in jni.c forward to the exports below.
package main

// #include <stdint.h>
import "C"
import (
	"log"
	"runtime/debug"
	"unsafe"

	"github.com/philipp01105/mirrorlog/bridge"
)

func utf16Slice(p *C.uint16_t, n C.int32_t) []uint16 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(p)), int(n))
}

func recoverPanic(name string) {
	if r := recover(); r != nil {
		log.Printf("PANIC in %s: %v\n%s", name, r, debug.Stack())
	}
}

//export GoMirrorlogInit
func GoMirrorlogInit(tag *C.uint16_t, tagLen C.int32_t, fd C.int32_t) C.int32_t {
	defer recoverPanic("GoMirrorlogInit")
	if err := bridge.Default.Init(utf16Slice(tag, tagLen), int32(fd)); err != nil {
		return -1
	}
	return 0
}

//export GoMirrorlogNewLogger
func GoMirrorlogNewLogger(classTag *C.uint16_t, n C.int32_t) (handle C.int64_t) {
	defer recoverPanic("GoMirrorlogNewLogger")
	h, err := bridge.Default.NewLogger(utf16Slice(classTag, n))
	if err != nil {
		return 0
	}
	return C.int64_t(h)
}

//export GoMirrorlogLog
func GoMirrorlogLog(handle C.int64_t, level C.int32_t, msg *C.uint16_t, n C.int32_t) {
	defer recoverPanic("GoMirrorlogLog")
	bridge.Default.Log(int64(handle), int32(level), utf16Slice(msg, n))
}

//export GoMirrorlogRelease
func GoMirrorlogRelease(handle C.int64_t) {
	bridge.Default.Release(int64(handle))
}

func main() {}
