package service

import (
	"errors"
	"strconv"
	"strings"
)

// ReconcileRequest — разобранный ответ администратора на пересланное
// сообщение о платеже: кому и на сколько изменить баланс.
type ReconcileRequest struct {
	UserID int64
	Amount int
}

// Ошибки разбора ответа администратора. Каждая причина отказа различима:
// протокол молчит в ответ администратору, но лог должен говорить, что
// именно не разобралось.
var (
	ErrAmountNotANumber = errors.New("reply is not an integer amount")
	ErrNoIdentityToken  = errors.New("quoted message has no ID token")
	ErrBadIdentityToken = errors.New("ID token is not an integer")
)

const identityTokenPrefix = "ID: "

// ParseAdminReply разбирает ответ администратора.
// replyText должен быть целым числом (сумма в рублях, знак допустим);
// quotedText — текст сообщения, на которое ответили, с строкой
// вида "ID: <целое>".
func ParseAdminReply(replyText, quotedText string) (ReconcileRequest, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(replyText))
	if err != nil {
		return ReconcileRequest{}, ErrAmountNotANumber
	}

	userID, err := extractIdentityToken(quotedText)
	if err != nil {
		return ReconcileRequest{}, err
	}

	return ReconcileRequest{UserID: userID, Amount: amount}, nil
}

// extractIdentityToken ищет в тексте строку с токеном "ID: <целое>"
func extractIdentityToken(text string) (int64, error) {
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, identityTokenPrefix)
		if idx < 0 {
			continue
		}
		raw := strings.TrimSpace(line[idx+len(identityTokenPrefix):])
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, ErrBadIdentityToken
		}
		return userID, nil
	}
	return 0, ErrNoIdentityToken
}
