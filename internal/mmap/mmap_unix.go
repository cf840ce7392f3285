//go:build !windows

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func Mmap(fd *os.File, write bool, offset int64, size int64) ([]byte, error) {
	prot := unix.PROT_READ
	flags := unix.MAP_SHARED

	if write {
		prot |= unix.PROT_WRITE
	}

	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() < size {
		if err := fd.Truncate(size); err != nil {
			return nil, fmt.Errorf("truncate: %s", err)
		}
	}

	return unix.Mmap(int(fd.Fd()), offset, int(size), prot, flags)
}

func Munmap(b []byte) error {
	return unix.Munmap(b)
}

func Madvise(b []byte, readahead bool) error {
	advice := unix.MADV_RANDOM
	if readahead {
		advice = unix.MADV_SEQUENTIAL
	}
	return unix.Madvise(b, advice)
}
