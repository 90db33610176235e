package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/goodnatureofminers/nonceaudit/pkg/safe"
)

const insertFindingsQuery = `
INSERT INTO nonce_reuse_findings (
	address,
	mode,
	r_value,
	tx_hash,
	position,
	detected_at
) VALUES`

// InsertFindings stores one row per occurrence of every finding.
func (r *Repository) InsertFindings(ctx context.Context, address string, mode model.DetectionMode, findings []model.ReuseFinding) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_findings", err, start)
	}()

	if len(findings) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertFindingsQuery)
	if err != nil {
		return fmt.Errorf("prepare findings batch: %w", err)
	}

	detectedAt := r.now().UTC()
	for _, f := range findings {
		for _, o := range f.Occurrences {
			var position uint32
			position, err = safe.Uint32(o.Position)
			if err != nil {
				return fmt.Errorf("finding position: %w", err)
			}
			if err = batch.Append(
				address,
				string(mode),
				f.RValue,
				o.TxHash,
				position,
				detectedAt,
			); err != nil {
				return fmt.Errorf("append finding: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert findings: %w", err)
	}
	return nil
}
