package telegram

import (
	"bytes"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/view"
)

// Данные inline-кнопок.
const (
	callbackNav           = "nav"
	callbackFilter        = "filter"
	callbackRemove        = "rm"
	callbackRemoveConfirm = "rmok"
	callbackRemoveCancel  = "rmno"
)

const helpText = `Commands:
/menu - menu overview
/manage - add or remove dishes
/filter [Starter|Main|Dessert|Beverage] - dishes by course
/add Name | Description | Course | Price - add a dish
/remove <id> - remove a dish`

func textMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// screenMessage превращает экран в сообщение с inline-клавиатурой.
func screenMessage(chatID int64, v view.View) (tgbotapi.MessageConfig, error) {
	var buf bytes.Buffer
	if err := view.RenderText(&buf, v); err != nil {
		return tgbotapi.MessageConfig{}, err
	}

	msg := tgbotapi.NewMessage(chatID, buf.String())
	msg.ReplyMarkup = screenKeyboard(v)
	return msg, nil
}

func screenKeyboard(v view.View) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch screen := v.(type) {
	case view.HomeView:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			navButton(screen.FilterAction),
		))
	case view.ManageView:
		for _, row := range screen.Dishes {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Remove "+row.Name, callbackRemove+":"+row.ID),
			))
		}
	case view.FilterView:
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(screen.Options))
		for _, opt := range screen.Options {
			label := opt.Label
			if opt.Selected {
				label = "• " + label
			}
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(label, callbackFilter+":"+filterValue(opt.Course)))
		}
		rows = append(rows, buttons)
	}

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, n := range v.Navigation() {
		nav = append(nav, navButton(n))
	}
	rows = append(rows, nav)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func navButton(n view.NavControl) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(n.Label, callbackNav+":"+string(n.Target))
}

// alertMessage показывает диалог; подтверждение удаления получает кнопки Cancel/Remove.
func alertMessage(chatID int64, alert *view.Alert) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s\n%s", alert.Title, alert.Message))

	var buttons []tgbotapi.InlineKeyboardButton
	for _, action := range alert.Actions {
		switch action.Style {
		case view.AlertStyleCancel:
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(action.Label, callbackRemoveCancel))
		case view.AlertStyleDestructive:
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(action.Label, callbackRemoveConfirm))
		}
	}
	if len(buttons) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons)
	}
	return msg
}

// filterValue кодирует раздел в callback-данные; пустой раздел становится "All".
func filterValue(course domain.Course) string {
	if course == domain.AnyCourse {
		return "All"
	}
	return string(course)
}
