//go:build !linux

package core

func gettid() int {
	return 0
}
