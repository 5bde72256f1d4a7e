package model

import (
	"errors"
	"fmt"
)

// UnsupportedGameError 请求的游戏不在支持集合内，在任何网络请求之前拒绝
type UnsupportedGameError struct {
	Game Game
}

func (e *UnsupportedGameError) Error() string {
	return fmt.Sprintf("不支持的游戏%q：没有对应的解析器", e.Game)
}

// BadResponseError 抓取返回非200状态码（致命，携带状态码上抛）
type BadResponseError struct {
	URL    string
	Status int
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("请求%s返回错误状态码%d", e.URL, e.Status)
}

// ConnectivityError 传输层无法连接站点（致命，内部不重试，重试策略归调用方）
type ConnectivityError struct {
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("无法连接%s: %v", e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ErrBracketRendererMissing 对阵表渲染协作组件缺失。
// 对整体工具非致命，对对阵表子功能致命；须与连接类错误区分上报。
var ErrBracketRendererMissing = errors.New("未注册对阵表渲染器：对阵表展示功能不可用")
