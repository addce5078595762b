package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/gen/ent"
	"github.com/edtech-ng/question-bank/gen/ent/englishquestion"
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/mathematicsquestion"
	"github.com/edtech-ng/question-bank/internal/entity"
)

// defaultDifficulty is stored when the source document carries no
// difficulty hint for a subject whose table tracks one.
const defaultDifficulty = "Medium"

// QuestionRepository is the record sink: an idempotent upsert keyed on
// question_number within the subject's table, plus the read paths the
// export service needs.
type QuestionRepository interface {
	Upsert(ctx context.Context, sub constants.Subject, q *entity.ExtractedQuestion) (*entity.Question, error)
	ListBySubject(ctx context.Context, sub constants.Subject) ([]*entity.Question, error)
	CountBySubject(ctx context.Context, sub constants.Subject) (int, error)
}

type questionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuestionRepository(client *ent.Client, logger *slog.Logger) QuestionRepository {
	return &questionRepository{
		client: client,
		logger: logger,
	}
}

func (r *questionRepository) Upsert(ctx context.Context, sub constants.Subject, q *entity.ExtractedQuestion) (*entity.Question, error) {
	var (
		row *entity.Question
		err error
	)
	switch sub {
	case constants.English:
		row, err = r.upsertEnglish(ctx, q)
	case constants.Mathematics:
		row, err = r.upsertMathematics(ctx, q)
	case constants.GeneralKnowledge:
		row, err = r.upsertGeneralKnowledge(ctx, q)
	default:
		return nil, fmt.Errorf("unknown subject: %s", sub)
	}
	if err != nil {
		r.logger.Error("failed to upsert question",
			"subject", sub, "question_number", q.QuestionNumber, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *questionRepository) upsertEnglish(ctx context.Context, q *entity.ExtractedQuestion) (*entity.Question, error) {
	id, err := r.client.EnglishQuestion.Create().
		SetQuestionNumber(q.QuestionNumber).
		SetQuestionText(q.QuestionText).
		SetOptionA(q.OptionA).
		SetOptionB(q.OptionB).
		SetOptionC(q.OptionC).
		SetOptionD(q.OptionD).
		SetCorrectAnswer(q.CorrectAnswer).
		SetQuestionType(q.QuestionType).
		SetSource(constants.English.DefaultSource()).
		OnConflictColumns(englishquestion.FieldQuestionNumber).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return nil, err
	}
	row, err := r.client.EnglishQuestion.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEnglishQuestion(row), nil
}

func (r *questionRepository) upsertMathematics(ctx context.Context, q *entity.ExtractedQuestion) (*entity.Question, error) {
	id, err := r.client.MathematicsQuestion.Create().
		SetQuestionNumber(q.QuestionNumber).
		SetQuestionText(q.QuestionText).
		SetOptionA(q.OptionA).
		SetOptionB(q.OptionB).
		SetOptionC(q.OptionC).
		SetOptionD(q.OptionD).
		SetCorrectAnswer(q.CorrectAnswer).
		SetQuestionType(q.QuestionType).
		// the topic column mirrors question_type, as the source bank did
		SetTopic(q.QuestionType).
		SetDifficultyLevel(difficultyOrDefault(q)).
		SetSource(constants.Mathematics.DefaultSource()).
		OnConflictColumns(mathematicsquestion.FieldQuestionNumber).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return nil, err
	}
	row, err := r.client.MathematicsQuestion.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMathematicsQuestion(row), nil
}

func (r *questionRepository) upsertGeneralKnowledge(ctx context.Context, q *entity.ExtractedQuestion) (*entity.Question, error) {
	id, err := r.client.GeneralKnowledgeQuestion.Create().
		SetQuestionNumber(q.QuestionNumber).
		SetQuestionText(q.QuestionText).
		SetOptionA(q.OptionA).
		SetOptionB(q.OptionB).
		SetOptionC(q.OptionC).
		SetOptionD(q.OptionD).
		SetCorrectAnswer(q.CorrectAnswer).
		SetQuestionType(q.QuestionType).
		SetCategory(q.QuestionType).
		SetDifficultyLevel(difficultyOrDefault(q)).
		SetSource(constants.GeneralKnowledge.DefaultSource()).
		OnConflictColumns(generalknowledgequestion.FieldQuestionNumber).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return nil, err
	}
	row, err := r.client.GeneralKnowledgeQuestion.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGeneralKnowledgeQuestion(row), nil
}

func (r *questionRepository) ListBySubject(ctx context.Context, sub constants.Subject) ([]*entity.Question, error) {
	switch sub {
	case constants.English:
		rows, err := r.client.EnglishQuestion.Query().
			Order(englishquestion.ByCreatedAt()).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*entity.Question, len(rows))
		for i, row := range rows {
			out[i] = toEnglishQuestion(row)
		}
		return out, nil
	case constants.Mathematics:
		rows, err := r.client.MathematicsQuestion.Query().
			Order(mathematicsquestion.ByCreatedAt()).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*entity.Question, len(rows))
		for i, row := range rows {
			out[i] = toMathematicsQuestion(row)
		}
		return out, nil
	case constants.GeneralKnowledge:
		rows, err := r.client.GeneralKnowledgeQuestion.Query().
			Order(generalknowledgequestion.ByCreatedAt()).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*entity.Question, len(rows))
		for i, row := range rows {
			out[i] = toGeneralKnowledgeQuestion(row)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown subject: %s", sub)
}

func (r *questionRepository) CountBySubject(ctx context.Context, sub constants.Subject) (int, error) {
	switch sub {
	case constants.English:
		return r.client.EnglishQuestion.Query().Count(ctx)
	case constants.Mathematics:
		return r.client.MathematicsQuestion.Query().Count(ctx)
	case constants.GeneralKnowledge:
		return r.client.GeneralKnowledgeQuestion.Query().Count(ctx)
	}
	return 0, fmt.Errorf("unknown subject: %s", sub)
}

func difficultyOrDefault(q *entity.ExtractedQuestion) string {
	if q.Difficulty != "" {
		return q.Difficulty
	}
	return defaultDifficulty
}

func toEnglishQuestion(e *ent.EnglishQuestion) *entity.Question {
	return &entity.Question{
		ID:             e.ID,
		QuestionNumber: e.QuestionNumber,
		QuestionText:   e.QuestionText,
		OptionA:        e.OptionA,
		OptionB:        e.OptionB,
		OptionC:        e.OptionC,
		OptionD:        e.OptionD,
		CorrectAnswer:  e.CorrectAnswer,
		QuestionType:   e.QuestionType,
		Source:         e.Source,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toMathematicsQuestion(e *ent.MathematicsQuestion) *entity.Question {
	return &entity.Question{
		ID:             e.ID,
		QuestionNumber: e.QuestionNumber,
		QuestionText:   e.QuestionText,
		OptionA:        e.OptionA,
		OptionB:        e.OptionB,
		OptionC:        e.OptionC,
		OptionD:        e.OptionD,
		CorrectAnswer:  e.CorrectAnswer,
		QuestionType:   e.QuestionType,
		Topic:          e.Topic,
		Difficulty:     e.DifficultyLevel,
		Source:         e.Source,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toGeneralKnowledgeQuestion(e *ent.GeneralKnowledgeQuestion) *entity.Question {
	return &entity.Question{
		ID:             e.ID,
		QuestionNumber: e.QuestionNumber,
		QuestionText:   e.QuestionText,
		OptionA:        e.OptionA,
		OptionB:        e.OptionB,
		OptionC:        e.OptionC,
		OptionD:        e.OptionD,
		CorrectAnswer:  e.CorrectAnswer,
		QuestionType:   e.QuestionType,
		Category:       e.Category,
		Difficulty:     e.DifficultyLevel,
		Source:         e.Source,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
