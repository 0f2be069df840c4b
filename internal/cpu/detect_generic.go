//go:build !amd64 && !arm64

package cpu

func detectExtras() extras {
	return extras{}
}
