package sysinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// driveKindUnknown is reported when the media type cannot be determined.
const driveKindUnknown = "Unknown"

// driveMedia determines the media kind (HDD/SSD) and removability of a
// block device. Only Linux exposes this through sysfs; other platforms
// report Unknown and non-removable.
func driveMedia(device string) (kind string, removable bool) {
	if runtime.GOOS != "linux" {
		return driveKindUnknown, false
	}

	block := baseBlockDevice(device)
	if block == "" {
		return driveKindUnknown, false
	}

	kind = driveKindUnknown
	if data, err := os.ReadFile(filepath.Join("/sys/block", block, "queue", "rotational")); err == nil {
		switch strings.TrimSpace(string(data)) {
		case "0":
			kind = "SSD"
		case "1":
			kind = "HDD"
		}
	}

	if data, err := os.ReadFile(filepath.Join("/sys/block", block, "removable")); err == nil {
		removable = strings.TrimSpace(string(data)) == "1"
	}

	return kind, removable
}

// baseBlockDevice strips the /dev prefix and partition suffix from a
// device path: /dev/sda1 -> sda, /dev/nvme0n1p2 -> nvme0n1.
func baseBlockDevice(device string) string {
	name := strings.TrimPrefix(device, "/dev/")
	if name == "" || strings.Contains(name, "/") {
		return ""
	}

	// nvme0n1p2 -> nvme0n1
	if strings.HasPrefix(name, "nvme") {
		if i := strings.LastIndex(name, "p"); i > 0 {
			if suffix := name[i+1:]; suffix != "" && strings.TrimLeft(suffix, "0123456789") == "" {
				return name[:i]
			}
		}
		return name
	}

	// sda1 -> sda
	return strings.TrimRight(name, "0123456789")
}
