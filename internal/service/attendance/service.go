package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flosclinic/attendance-bot/internal/domain/attendance"
	"github.com/flosclinic/attendance-bot/internal/domain/employee"
	"github.com/flosclinic/attendance-bot/internal/domain/organization"
)

// Reply texts. These are user-facing strings from the production bot; the
// tests assert against them, so changes here are behavior changes.
const (
	replyGroupOnly       = "此功能僅限在群組或聊天室中使用"
	replyOrgNotFound     = "找不到診所資訊，請聯絡管理員"
	replyNotBound        = "❌ 您尚未綁定員工資料，請先使用「員工綁定」指令"
	replyBindUsage       = "格式錯誤！請使用：員工綁定 授權碼 姓名\n例如：員工綁定 ADMIN-HBH012 王小明"
	replyBindBadAuthCode = "❌ 授權碼錯誤"
	replyBindFailed      = "❌ 綁定失敗，請稍後再試"
	replyPunchFailed     = "❌ 打卡失敗，請稍後再試"
	replyNotCheckedIn    = "❌ 您今天尚未打卡上班"
)

const clockFormat = "15:04"

// MessageReplier is the reply-token-bound send operation of the messaging
// gateway.
type MessageReplier interface {
	ReplyText(ctx context.Context, replyToken string, text string) error
}

type AttendanceServiceImpl struct {
	orgRepo        organization.OrganizationRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	messenger      MessageReplier
	adminAuthCode  string

	now func() time.Time
}

func NewAttendanceService(
	orgRepo organization.OrganizationRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	messenger MessageReplier,
	adminAuthCode string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		orgRepo:        orgRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		messenger:      messenger,
		adminAuthCode:  adminAuthCode,
		now:            time.Now,
	}
}

// HandleTextMessage implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) HandleTextMessage(ctx context.Context, msg attendance.IncomingMessage) error {
	cmd := ParseCommand(msg.Text)
	if cmd.Kind == CommandUnknown {
		// Unrecognized text gets no reply at all.
		slog.Debug("ignoring unrecognized message", "user_id", msg.LineUserID)
		return nil
	}

	if msg.ChannelID == "" {
		s.reply(ctx, msg.ReplyToken, replyGroupOnly)
		return nil
	}

	org, err := s.orgRepo.GetByChannelID(ctx, msg.ChannelID)
	if err != nil {
		if !errors.Is(err, organization.ErrOrganizationNotFound) {
			slog.Error("failed to resolve organization", "channel_id", msg.ChannelID, "error", err)
		}
		s.reply(ctx, msg.ReplyToken, replyOrgNotFound)
		return nil
	}

	switch cmd.Kind {
	case CommandBind:
		s.handleBind(ctx, org, msg, cmd)
	case CommandCheckIn:
		s.handleCheckIn(ctx, msg)
	case CommandCheckOut:
		s.handleCheckOut(ctx, msg)
	case CommandStatus:
		s.handleStatus(ctx, msg)
	}

	return nil
}

func (s *AttendanceServiceImpl) handleBind(ctx context.Context, org organization.Organization, msg attendance.IncomingMessage, cmd Command) {
	if cmd.AuthCode == "" || cmd.Name == "" {
		s.reply(ctx, msg.ReplyToken, replyBindUsage)
		return
	}

	if cmd.AuthCode != s.adminAuthCode {
		s.reply(ctx, msg.ReplyToken, replyBindBadAuthCode)
		return
	}

	existing, err := s.employeeRepo.GetActiveByLineUserID(ctx, msg.LineUserID)
	if err == nil {
		// Already bound: idempotent no-op reporting the existing name.
		s.reply(ctx, msg.ReplyToken, fmt.Sprintf("您已經綁定為：%s\n如需更改請聯絡管理員", existing.Name))
		return
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		slog.Error("failed to look up employee binding", "line_user_id", msg.LineUserID, "error", err)
		s.reply(ctx, msg.ReplyToken, replyBindFailed)
		return
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		OrganizationID: org.ID,
		LineUserID:     msg.LineUserID,
		Name:           cmd.Name,
	})
	if err != nil {
		slog.Error("failed to create employee", "line_user_id", msg.LineUserID, "error", err)
		s.reply(ctx, msg.ReplyToken, replyBindFailed)
		return
	}

	s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
		"✅ 員工綁定成功！\n姓名：%s\n\n您現在可以使用以下指令：\n• 打卡上班\n• 打卡下班\n• 查詢打卡",
		created.Name,
	))
}

func (s *AttendanceServiceImpl) handleCheckIn(ctx context.Context, msg attendance.IncomingMessage) {
	emp, ok := s.resolveEmployee(ctx, msg)
	if !ok {
		return
	}

	today, err := s.todayRecord(ctx, emp.ID)
	if err == nil && today.IsOpen() {
		s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
			"您今天已經打卡上班了\n上班時間：%s",
			today.CheckInTime.Format(clockFormat),
		))
		return
	}

	rec, err := s.attendanceRepo.CheckIn(ctx, emp.ID, s.now(), nil)
	if err != nil {
		slog.Error("failed to insert check-in", "employee_id", emp.ID, "error", err)
		s.reply(ctx, msg.ReplyToken, replyPunchFailed)
		return
	}

	s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
		"✅ 上班打卡成功！\n姓名：%s\n時間：%s",
		emp.Name, rec.CheckInTime.Format(clockFormat),
	))
}

func (s *AttendanceServiceImpl) handleCheckOut(ctx context.Context, msg attendance.IncomingMessage) {
	emp, ok := s.resolveEmployee(ctx, msg)
	if !ok {
		return
	}

	today, err := s.todayRecord(ctx, emp.ID)
	if err != nil {
		s.reply(ctx, msg.ReplyToken, replyNotCheckedIn)
		return
	}

	if !today.IsOpen() {
		s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
			"您今天已經打卡下班了\n下班時間：%s",
			today.CheckOutTime.Format(clockFormat),
		))
		return
	}

	rec, err := s.attendanceRepo.CheckOut(ctx, today.ID, s.now())
	if err != nil {
		slog.Error("failed to set check-out", "record_id", today.ID, "error", err)
		s.reply(ctx, msg.ReplyToken, replyPunchFailed)
		return
	}

	hours, minutes := rec.WorkDuration()
	s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
		"✅ 下班打卡成功！\n姓名：%s\n上班：%s\n下班：%s\n工時：%d 小時 %d 分鐘",
		emp.Name,
		rec.CheckInTime.Format(clockFormat),
		rec.CheckOutTime.Format(clockFormat),
		hours, minutes,
	))
}

func (s *AttendanceServiceImpl) handleStatus(ctx context.Context, msg attendance.IncomingMessage) {
	emp, ok := s.resolveEmployee(ctx, msg)
	if !ok {
		return
	}

	today, err := s.todayRecord(ctx, emp.ID)
	if err != nil {
		s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
			"📋 今日打卡狀態\n姓名：%s\n狀態：尚未打卡",
			emp.Name,
		))
		return
	}

	if today.IsOpen() {
		s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
			"📋 今日打卡狀態\n姓名：%s\n上班：%s\n狀態：上班中",
			emp.Name, today.CheckInTime.Format(clockFormat),
		))
		return
	}

	hours, minutes := today.WorkDuration()
	s.reply(ctx, msg.ReplyToken, fmt.Sprintf(
		"📋 今日打卡狀態\n姓名：%s\n上班：%s\n下班：%s\n工時：%d 小時 %d 分鐘",
		emp.Name,
		today.CheckInTime.Format(clockFormat),
		today.CheckOutTime.Format(clockFormat),
		hours, minutes,
	))
}

// resolveEmployee looks up the active employee for the sender and sends the
// "bind first" reply when there is none.
func (s *AttendanceServiceImpl) resolveEmployee(ctx context.Context, msg attendance.IncomingMessage) (employee.Employee, bool) {
	emp, err := s.employeeRepo.GetActiveByLineUserID(ctx, msg.LineUserID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Error("failed to resolve employee", "line_user_id", msg.LineUserID, "error", err)
		}
		s.reply(ctx, msg.ReplyToken, replyNotBound)
		return employee.Employee{}, false
	}
	return emp, true
}

// todayRecord fetches today's record. Lookup failures other than not-found
// are logged and folded into not-found, matching the persistence gateway's
// log-and-return-null contract.
func (s *AttendanceServiceImpl) todayRecord(ctx context.Context, employeeID int64) (attendance.AttendanceRecord, error) {
	rec, err := s.attendanceRepo.GetTodayByEmployeeID(ctx, employeeID, s.now())
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		slog.Error("failed to fetch today's record", "employee_id", employeeID, "error", err)
		return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
	}
	return rec, err
}

// reply sends a reply-token-bound text message. Delivery failure is logged
// and swallowed; attendance state is already committed at this point.
func (s *AttendanceServiceImpl) reply(ctx context.Context, replyToken string, text string) {
	if err := s.messenger.ReplyText(ctx, replyToken, text); err != nil {
		slog.Error("failed to send reply", "error", err)
	}
}
