package booking

import "github.com/flosclinic/attendance-bot/internal/pkg/line"

// confirmationBuilder assembles the booking confirmation bubble over its
// fixed header / body-rows / footer layout. Rows are appended in call order;
// optional rows that are empty are skipped without affecting the rest.
type confirmationBuilder struct {
	customerName string
	rows         []line.Component
}

func newConfirmationBuilder(customerName string) *confirmationBuilder {
	return &confirmationBuilder{customerName: customerName}
}

func (b *confirmationBuilder) row(label string, value string, bold bool) {
	labelText := line.NewText(label)
	labelText.Color = "#aaaaaa"
	labelText.Size = "sm"
	labelText.Flex = 2

	valueText := line.NewText(value)
	valueText.Wrap = true
	valueText.Color = "#666666"
	valueText.Size = "sm"
	valueText.Flex = 5
	if bold {
		valueText.Weight = "bold"
	}

	box := line.BaselineBox(labelText, valueText)
	box.Spacing = "sm"
	b.rows = append(b.rows, box)
}

func (b *confirmationBuilder) optionalRow(label string, value string) {
	if value == "" {
		return
	}
	b.row(label, value, false)
}

func (b *confirmationBuilder) build() line.FlexMessage {
	title := line.NewText("✅ 預約成功")
	title.Color = "#ffffff"
	title.Size = "xl"
	title.Weight = "bold"

	subtitle := line.NewText("已收到您的預約申請")
	subtitle.Color = "#ffffff"
	subtitle.Size = "sm"
	subtitle.Margin = "sm"

	header := line.VerticalBox(line.VerticalBox(title, subtitle))
	header.PaddingAll = "20px"
	header.BackgroundColor = "#1e3a8a"
	header.Spacing = "md"

	rowsBox := line.VerticalBox(b.rows...)
	rowsBox.Margin = "lg"
	rowsBox.Spacing = "sm"

	footerNote := line.NewText("診所人員將盡快與您聯繫確認")
	footerNote.Size = "xs"
	footerNote.Color = "#999999"
	footerNote.Align = "center"

	footer := line.VerticalBox(line.VerticalBox(footerNote))
	footer.Spacing = "sm"
	footer.Flex = line.Int(0)

	bubble := line.NewBubble("mega")
	bubble.Header = header
	bubble.Body = line.VerticalBox(rowsBox)
	bubble.Footer = footer

	return line.FlexMessage{
		AltText:  "預約確認 - " + b.customerName,
		Contents: bubble,
	}
}
