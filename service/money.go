package service

import "math"

// Cents 接口层金额以元为单位，落库统一转为分。
// 换算只发生在这一处，服务内部一律使用分。
func Cents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// Major 分转元，仅用于需要向用户展示金额的文案
func Major(cents int64) float64 {
	return float64(cents) / 100
}
