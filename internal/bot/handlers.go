package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonStudy    = "🎓 Học ngay"
	ButtonHistory  = "📜 Lịch sử"
	ButtonSettings = "⚙️ Cài đặt"
	ButtonMainMenu = "🏠 Menu chính"
	ButtonHelp     = "ℹ️ Trợ giúp"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Lệnh không hợp lệ. Dùng /start nhé.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🧠 Chào mừng đến với MindStack!\n\n" +
		"• 🎓 Học thẻ đến hạn theo phiên\n" +
		"• 🔊 Nghe phát âm từng mặt thẻ\n" +
		"• 📜 Xem lại lịch sử ôn tập\n\n" +
		"Bấm nút bên dưới để bắt đầu!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Menu chính:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStudy),
			tgbotapi.NewKeyboardButton(ButtonHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonSettings),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Các lệnh:
/start — khởi động bot
/help — tin nhắn này

🎯 Dùng các nút:
• "Học ngay" — bắt đầu phiên ôn tập
• "Lịch sử" — các thẻ vừa trả lời
• "Cài đặt" — tự phát âm thanh, hiện ảnh
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID
	text := message.Text

	switch text {
	case ButtonStudy:
		t.review.startSession(message, userID)
	case ButtonHistory:
		t.review.showHistory(message, userID)
	case ButtonSettings:
		t.review.showSettings(message, userID)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Mình chưa hiểu. Dùng các nút bên dưới nhé.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "rate_"):
		t.review.handleRating(query)

	case data == "flip":
		t.review.handleFlip(query)

	case strings.HasPrefix(data, "audio_"):
		t.review.handleAudio(query)

	case data == "end_session":
		t.review.endSession(query)

	case strings.HasPrefix(data, "toggle_"):
		t.review.handleToggle(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
