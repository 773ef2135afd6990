package modules

import (
	"strings"
	"unsafe"

	"codeberg.org/tkardel/baro/internal/errors"
	"golang.org/x/sys/unix"
)

// Wireless-extensions ioctl for the current ESSID.
const (
	siocgiwessid   = 0x8B1B
	iwEssidMaxSize = 32
)

type iwPoint struct {
	pointer unsafe.Pointer
	length  uint16
	flags   uint16
}

type iwreq struct {
	name  [unix.IFNAMSIZ]byte
	point iwPoint
}

// essid queries the kernel for the ESSID the interface is associated
// with. Failures are transient: an unassociated interface is a normal
// state, not a dead module.
func essid(iface string) (string, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return "", errFactory.Wrap(errors.ErrSampleTransient, err)
	}
	defer unix.Close(fd)

	buf := make([]byte, iwEssidMaxSize)
	var req iwreq
	copy(req.name[:], iface)
	req.point = iwPoint{pointer: unsafe.Pointer(&buf[0]), length: iwEssidMaxSize}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), siocgiwessid, uintptr(unsafe.Pointer(&req))); errno != 0 {
		return "", errFactory.Wrap(errors.ErrSampleTransient, errno)
	}

	return strings.TrimRight(string(buf[:req.point.length]), "\x00"), nil
}
