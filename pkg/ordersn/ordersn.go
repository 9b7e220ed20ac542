package ordersn

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

var h *hashids.HashID

func init() {
	hd := hashids.NewData()
	hd.Salt = "grainmall-order"
	hd.MinLength = 10
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	h, _ = hashids.NewWithData(hd)
}

// Gen 根据订单ID生成对外展示的订单号，形如 ORD-7K2M9QX4TZ
func Gen(orderID int64) string {
	sn, err := h.EncodeInt64([]int64{orderID})
	if err != nil {
		// hashids 只在字母表不合法时报错，此处兜底用数字串
		return fmt.Sprintf("ORD-%d", orderID)
	}
	return "ORD-" + sn
}
