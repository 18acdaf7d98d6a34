//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package launcher

import "os/exec"

func detach(*exec.Cmd) {}
