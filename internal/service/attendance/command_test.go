package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{"check-in", "打卡上班", Command{Kind: CommandCheckIn}},
		{"check-in alternate", "上班打卡", Command{Kind: CommandCheckIn}},
		{"check-out", "打卡下班", Command{Kind: CommandCheckOut}},
		{"check-out alternate", "下班打卡", Command{Kind: CommandCheckOut}},
		{"status", "查詢打卡", Command{Kind: CommandStatus}},
		{"check-in with surrounding whitespace", "  打卡上班  ", Command{Kind: CommandCheckIn}},
		{"bind with code and name", "員工綁定 ADMIN-HBH012 王小明", Command{Kind: CommandBind, AuthCode: "ADMIN-HBH012", Name: "王小明"}},
		{"bind with multi-token name", "員工綁定 ADMIN-HBH012 王 小明", Command{Kind: CommandBind, AuthCode: "ADMIN-HBH012", Name: "王 小明"}},
		{"bind missing name", "員工綁定 ADMIN-HBH012", Command{Kind: CommandBind}},
		{"bind keyword only", "員工綁定", Command{Kind: CommandBind}},
		{"unknown text", "hello", Command{Kind: CommandUnknown}},
		{"partial keyword", "打卡", Command{Kind: CommandUnknown}},
		{"keyword inside sentence", "我要打卡上班了", Command{Kind: CommandUnknown}},
		{"empty text", "", Command{Kind: CommandUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.text))
		})
	}
}
