package util

import (
	"os/exec"
	"runtime"
)

// browserCommand 返回打开 url 的系统命令
func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		// rundll32 比 cmd /c start 更稳定
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

// fallbackBrowsers Linux 下的备选浏览器
var fallbackBrowsers = []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}

// OpenBrowser 打开默认浏览器
func OpenBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	return exec.Command(name, args...).Start()
}

// OpenBrowserWithFallback 主要方式失败时尝试备选方式
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		for _, browser := range fallbackBrowsers {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}
