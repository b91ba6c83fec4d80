package utils

import (
	"io"

	"github.com/pkg/browser"
)

// OpenBrowser 用系统默认浏览器打开地址
func OpenBrowser(url string) error {
	// 浏览器进程的输出不混入日志
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}
