package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"forumCPT/internal/models"
)

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// tableFor возвращает таблицу реакций и колонку-ключ для вида сущности
func tableFor(entity models.EntityKind) (table string, idColumn string, err error) {
	switch entity {
	case models.KindPost:
		return "post_reactions", "post_id", nil
	case models.KindComment:
		return "comment_reactions", "comment_id", nil
	default:
		return "", "", fmt.Errorf("неизвестный вид сущности: %s", entity)
	}
}

// Add ставит реакцию одним запросом. Первичный ключ (entity_id, user_id)
// не даёт пользователю иметь лайк и дизлайк одновременно: при существующей
// строке вставка не происходит и Add возвращает false.
func (r *reactionRepository) Add(ctx context.Context, entity models.EntityKind, entityID, userID string, kind models.ReactionKind) (bool, error) {
	table, idColumn, err := tableFor(entity)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, user_id, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, user_id) DO NOTHING
	`, table, idColumn, idColumn)

	result, err := r.db.ExecContext(ctx, query, entityID, userID, string(kind))
	if err != nil {
		return false, fmt.Errorf("ошибка при добавлении реакции: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	return rowsAffected > 0, nil
}

// Remove снимает реакцию указанного вида. Возвращает false, если реакции не было.
func (r *reactionRepository) Remove(ctx context.Context, entity models.EntityKind, entityID, userID string, kind models.ReactionKind) (bool, error) {
	table, idColumn, err := tableFor(entity)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND user_id = $2 AND kind = $3
	`, table, idColumn)

	result, err := r.db.ExecContext(ctx, query, entityID, userID, string(kind))
	if err != nil {
		return false, fmt.Errorf("ошибка при удалении реакции: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *reactionRepository) Get(ctx context.Context, entity models.EntityKind, entityID string) ([]string, []string, error) {
	table, idColumn, err := tableFor(entity)
	if err != nil {
		return nil, nil, err
	}

	query := fmt.Sprintf(`SELECT user_id, kind FROM %s WHERE %s = $1`, table, idColumn)

	var rows []struct {
		UserID string `db:"user_id"`
		Kind   string `db:"kind"`
	}

	err = r.db.SelectContext(ctx, &rows, query, entityID)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка при получении реакций: %w", err)
	}

	likes := []string{}
	dislikes := []string{}
	for _, row := range rows {
		if row.Kind == string(models.ReactionLike) {
			likes = append(likes, row.UserID)
		} else {
			dislikes = append(dislikes, row.UserID)
		}
	}

	return likes, dislikes, nil
}
