package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/service"
)

const complaintColumns = `
	complaint_id,
	complainant_name,
	complainant_phone,
	complainant_email,
	relation_to_victim,
	victim_name, victim_phone, victim_age_gender, victim_relation,
	incident_type, title, incident_date, incident_time,
	district, subdivision, exact_address, description,
	suspect_name, suspect_marks, suspect_complexion, suspect_address,
	witness_name, witness_contact, witness_statement,
	evidence_files, status, close_reason, created_at`

type ComplaintRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewComplaintRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ComplaintRepository {
	return &ComplaintRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// NextComplaintID выдает следующий идентификатор из последовательности бд.
// nextval сериализован самой базой: две конкурентные выдачи никогда не
// возвращают одно значение. Неиспользованный идентификатор оставляет разрыв
// в нумерации, дубликатов не бывает.
func (r *ComplaintRepository) NextComplaintID(ctx context.Context) (string, error) {
	var id string
	query := `SELECT 'CMP' || lpad(nextval('complaint_id_seq')::text, 10, '0');`
	if err := r.db.QueryRow(ctx, query).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to generate complaint id: %w", err)
	}
	return id, nil
}

// Create сохраняет новую жалобу
func (r *ComplaintRepository) Create(ctx context.Context, c *models.Complaint) error {
	evidence, err := json.Marshal(emptyIfNil(c.EvidenceFiles))
	if err != nil {
		return fmt.Errorf("failed to marshal evidence refs: %w", err)
	}

	victim := c.Victim
	if victim == nil {
		victim = &models.VictimDetails{}
	}
	suspect := c.Suspect
	if suspect == nil {
		suspect = &models.SuspectDetails{}
	}
	witness := c.Witness
	if witness == nil {
		witness = &models.WitnessDetails{}
	}

	query := `
		INSERT INTO complaints (
			complaint_id, complainant_name, complainant_phone, complainant_email, relation_to_victim,
			victim_name, victim_phone, victim_age_gender, victim_relation,
			incident_type, title, incident_date, incident_time,
			district, subdivision, exact_address, description,
			suspect_name, suspect_marks, suspect_complexion, suspect_address,
			witness_name, witness_contact, witness_statement,
			evidence_files, status, close_reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING created_at;
	`
	err = r.db.QueryRow(ctx, query,
		c.ComplaintID, c.ComplainantName, c.ComplainantPhone, c.ComplainantEmail, c.RelationToVictim,
		victim.Name, victim.Phone, victim.AgeGender, victim.Relation,
		c.IncidentType, c.Title, c.IncidentDate, c.IncidentTime,
		c.District, c.Subdivision, c.ExactAddress, c.Description,
		suspect.Name, suspect.Marks, suspect.Complexion, suspect.Address,
		witness.Name, witness.Contact, witness.Statement,
		evidence, string(c.Status.State), string(c.Status.Reason),
	).Scan(&c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("complaint id %s already taken: %w", c.ComplaintID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID возвращает жалобу по идентификатору
func (r *ComplaintRepository) GetByID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE complaint_id = $1;`
	c, err := scanComplaint(r.db.QueryRow(ctx, query, complaintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint %s: %w", complaintID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return c, nil
}

// GetByIDAndComplainant возвращает жалобу только при совпадении номера и
// контакта заявителя, чтобы чужие жалобы нельзя было перечислить по номерам
func (r *ComplaintRepository) GetByIDAndComplainant(ctx context.Context, complaintID, email string) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + `
		FROM complaints
		WHERE complaint_id = $1 AND lower(complainant_email) = lower($2);`
	c, err := scanComplaint(r.db.QueryRow(ctx, query, complaintID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint %s: %w", complaintID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint for complainant: %w", err)
	}
	return c, nil
}

// ListByJurisdiction возвращает жалобы участка, новые раньше старых
func (r *ComplaintRepository) ListByJurisdiction(ctx context.Context, district, subdivision string) ([]*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + `
		FROM complaints
		WHERE district = $1 AND subdivision = $2
		ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, district, subdivision)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return complaints, nil
}

// UpdateStatus меняет статус жалобы одной транзакцией со счетчиком статистики.
// UPDATE сторожится ожидаемым исходным статусом: конкурентный переход обнуляет
// RowsAffected и вся транзакция откатывается, поэтому счетчик не может
// примениться дважды или без смены статуса.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, complaintID string, from models.State, to models.Status, incrementStats bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin status transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE complaints
		SET status = $1, close_reason = $2
		WHERE complaint_id = $3 AND status = $4;`,
		string(to.State), string(to.Reason), complaintID, string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM complaints WHERE complaint_id = $1);`,
			complaintID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check complaint existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("complaint %s: %w", complaintID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("complaint %s changed concurrently: %w", complaintID, apperrors.ErrConflict)
	}

	if incrementStats {
		if _, err := tx.Exec(ctx, `
			INSERT INTO crime_statistics (district, subdivision, incident_type, total)
			SELECT district, subdivision, lower(incident_type), 1
			FROM complaints WHERE complaint_id = $1
			ON CONFLICT (district, subdivision, incident_type)
			DO UPDATE SET total = crime_statistics.total + 1;`,
			complaintID,
		); err != nil {
			return fmt.Errorf("failed to increment crime statistics: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status transaction: %w", err)
	}
	return nil
}

// AppendEvidence дописывает ссылки на вложения к jsonb-массиву
func (r *ComplaintRepository) AppendEvidence(ctx context.Context, complaintID string, refs []string) error {
	payload, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("failed to marshal evidence refs: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE complaints
		SET evidence_files = evidence_files || $1::jsonb
		WHERE complaint_id = $2;`,
		payload, complaintID,
	)
	if err != nil {
		return fmt.Errorf("failed to append evidence refs: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("complaint %s: %w", complaintID, apperrors.ErrNotFound)
	}
	return nil
}

// GetStatistics возвращает счетчики по участкам; пустой фильтр не ограничивает выборку
func (r *ComplaintRepository) GetStatistics(ctx context.Context, district, subdivision string) ([]*models.CrimeStatistics, error) {
	query := `
		SELECT district, subdivision, incident_type, total
		FROM crime_statistics
		WHERE ($1 = '' OR district = $1) AND ($2 = '' OR subdivision = $2)
		ORDER BY district, subdivision, incident_type;`
	rows, err := r.db.Query(ctx, query, district, subdivision)
	if err != nil {
		return nil, fmt.Errorf("failed to get crime statistics: %w", err)
	}
	defer rows.Close()

	stats := make([]*models.CrimeStatistics, 0)
	var current *models.CrimeStatistics
	for rows.Next() {
		var d, s, incidentType string
		var total int
		if err := rows.Scan(&d, &s, &incidentType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan statistics row: %w", err)
		}
		if current == nil || current.District != d || current.Subdivision != s {
			current = &models.CrimeStatistics{
				District:    d,
				Subdivision: s,
				Counts:      make(map[string]int),
			}
			stats = append(stats, current)
		}
		current.Counts[incidentType] = total
		current.Total += total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error statistics iteration: %w", err)
	}
	return stats, nil
}

// GetComplaintFromCache пытается получить жалобу из Redis
func (r *ComplaintRepository) GetComplaintFromCache(ctx context.Context, complaintID string) (*models.Complaint, error) {
	key := fmt.Sprintf("complaint:%s", complaintID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get complaint from cache: %w", err)
	}

	complaint := &models.Complaint{}
	if err := json.Unmarshal(val, complaint); err != nil {
		return nil, fmt.Errorf("failed to unmarshal complaint from cache: %w", err)
	}
	return complaint, nil
}

// SetComplaintCache сохраняет жалобу в Redis
func (r *ComplaintRepository) SetComplaintCache(ctx context.Context, c *models.Complaint) error {
	key := fmt.Sprintf("complaint:%s", c.ComplaintID)
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set complaint in cache: %w", err)
	}
	return nil
}

// InvalidateComplaintCache удаляет жалобу из Redis кэша
func (r *ComplaintRepository) InvalidateComplaintCache(ctx context.Context, complaintID string) error {
	key := fmt.Sprintf("complaint:%s", complaintID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate complaint cache: %w", err)
	}
	return nil
}

// scanComplaint собирает модель из плоской строки complaints
func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	c := &models.Complaint{}
	var (
		state, closeReason string
		victim             models.VictimDetails
		suspect            models.SuspectDetails
		witness            models.WitnessDetails
		evidence           []byte
	)
	err := row.Scan(
		&c.ComplaintID,
		&c.ComplainantName,
		&c.ComplainantPhone,
		&c.ComplainantEmail,
		&c.RelationToVictim,
		&victim.Name, &victim.Phone, &victim.AgeGender, &victim.Relation,
		&c.IncidentType, &c.Title, &c.IncidentDate, &c.IncidentTime,
		&c.District, &c.Subdivision, &c.ExactAddress, &c.Description,
		&suspect.Name, &suspect.Marks, &suspect.Complexion, &suspect.Address,
		&witness.Name, &witness.Contact, &witness.Statement,
		&evidence, &state, &closeReason, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = models.Status{State: models.State(state), Reason: models.CloseReason(closeReason)}
	if victim != (models.VictimDetails{}) {
		c.Victim = &victim
	}
	if suspect != (models.SuspectDetails{}) {
		c.Suspect = &suspect
	}
	if witness != (models.WitnessDetails{}) {
		c.Witness = &witness
	}
	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &c.EvidenceFiles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evidence refs: %w", err)
		}
	}
	return c, nil
}

func emptyIfNil(refs []string) []string {
	if refs == nil {
		return []string{}
	}
	return refs
}
