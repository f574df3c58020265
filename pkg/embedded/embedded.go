// Package embedded 让其他包访问 main 包中嵌入的文件
//
// //go:embed 只能访问声明它的包目录之下的文件，所以 embed.FS
// 声明在仓库根目录（embed.go），启动时通过 Init 传入。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 注册嵌入的数据文件，在 main 开头调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回是否已调用 Init
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取嵌入文件，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return fs.ReadFile(dataFS, path)
}
