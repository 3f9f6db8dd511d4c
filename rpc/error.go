package rpc

import (
	"fmt"
	"strings"

	"github.com/bingooh/b-go-precheck/util"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeRpcCodeMap = map[int]codes.Code{
	util.ErrCodeIllegalArg:   codes.InvalidArgument,
	util.ErrCodeAssertFail:   codes.InvalidArgument,
	util.ErrCodeIllegalState: codes.FailedPrecondition,
	util.ErrCodeTimeout:      codes.DeadlineExceeded,
	util.ErrCodeInternal:     codes.Internal,
	util.ErrCodeNotFound:     codes.NotFound,
	util.ErrCodeCanceled:     codes.Canceled,
	util.ErrCodeAborted:      codes.Aborted,
	util.ErrCodeUnknown:      codes.Unknown,
	util.ErrCodeOK:           codes.OK,
}

// 多个错误码映射到codes.InvalidArgument，反向映射使用util.ErrCodeIllegalArg
var rpcCodeCodeMap = func() map[codes.Code]int {
	m := make(map[codes.Code]int, len(codeRpcCodeMap))
	for k, v := range codeRpcCodeMap {
		if _, ok := m[v]; !ok || k == util.ErrCodeIllegalArg {
			m[v] = k
		}
	}

	return m
}()

func ToRpcErrCode(bizErrCode int, defaultRpcErrCode codes.Code) codes.Code {
	if v, ok := codeRpcCodeMap[bizErrCode]; ok {
		return v
	}

	return defaultRpcErrCode
}

func ToBizErrCode(code codes.Code, defaultBizErrCode int) int {
	if v, ok := rpcCodeCodeMap[code]; ok {
		return v
	}

	return defaultBizErrCode
}

func IsRpcErrCode(code codes.Code) bool {
	return code >= codes.OK && code <= codes.Unauthenticated
}

func IsRpcErr(err error) bool {
	_, ok := status.FromError(err) //err==nil将返回true
	return ok
}

// ToRpcErr 转换为status.Error，实现util.Coder的错误将按错误码转换
// 检查失败错误(precheck.Error)转换为codes.InvalidArgument，且错误消息保持不变
func ToRpcErr(err error, args ...interface{}) error {
	if IsRpcErr(err) {
		return err
	}

	code := codes.Unknown
	if c, ok := util.AsCoder(err); ok {
		code = ToRpcErrCode(c.Code(), codes.Code(c.Code()))
	}

	if len(args) == 0 {
		return status.Error(code, err.Error())
	}

	args = append([]interface{}{err}, args...)
	return status.Error(code, util.Sprintf(args...))
}

func ToBizErr(err error) error {
	if err == nil {
		return err
	}

	if s, ok := status.FromError(err); ok && s != nil {
		code := ToBizErrCode(s.Code(), int(s.Code()))
		//去掉错误码，避免重复，此方法需要与BizError格式化错误消息方法同步
		msg := strings.TrimPrefix(s.Message(), fmt.Sprintf(`(%v)`, code))
		return util.NewBizError(code, msg)
	}

	return util.ToBizError(err)
}
