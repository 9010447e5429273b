package mapper

import (
	"marceneiro/internal/adapter/http/dto"
	"marceneiro/internal/core/domain"
	"marceneiro/pkg/translator"
)

var statusLabelKeys = map[domain.Status]string{
	domain.StatusOrcamento:  "statusOrcamento",
	domain.StatusExecucao:   "statusExecucao",
	domain.StatusFinalizada: "statusFinalizada",
}

// StatusLabel returns the column heading for status in lang.
func StatusLabel(status domain.Status, lang string) string {
	key, ok := statusLabelKeys[status]
	if !ok {
		return string(status)
	}
	return translator.Localize(key, lang)
}

func ToBoard(board domain.Board, lang string) dto.Board {
	columns := make([]dto.BoardColumn, 0, len(board.Columns))
	for _, column := range board.Columns {
		columns = append(columns, dto.BoardColumn{
			Status: string(column.Status),
			Label:  StatusLabel(column.Status, lang),
			Tasks:  ToTaskItems(column.Tasks),
		})
	}
	return dto.Board{ObraID: board.ProjectID, Columns: columns}
}
