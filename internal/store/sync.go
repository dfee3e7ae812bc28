package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// Legacy bucket keys, one JSON array each.
const (
	legacyInfluencers = "influencers"
	legacyClients     = "clients"
	legacyCampaigns   = "campaigns"
	legacyGroups      = "groups"
)

// SyncReport summarizes a legacy migration run. Errors never abort the
// batch; a bad record is skipped and noted.
type SyncReport struct {
	Migrated int      `json:"migrated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func (r *SyncReport) errf(format string, args ...interface{}) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// MigrateLegacy replays the four legacy buckets through the store's add
// paths. Each source key is cleared only after its whole batch was
// attempted; partial success is never rolled back. When a sync mirror is
// configured every migrated record is also POSTed there best-effort.
func (s *Store) MigrateLegacy() (*SyncReport, error) {
	var (
		rep    SyncReport
		mirror [][2]string // kind, payload
	)

	s.mux.Lock()
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := misc.GetBucket(tx, s.cfg.Bucket.Legacy)

		for _, raw := range decodeLegacy(b.Get([]byte(legacyInfluencers)), legacyInfluencers, &rep) {
			var inf common.Influencer
			if err := json.Unmarshal(raw, &inf); err != nil {
				rep.errf("influencers: %v", err)
				continue
			}
			if err := inf.Sanitize().Check(); err != nil {
				rep.errf("influencer %q: %v", inf.Name, err)
				continue
			}
			if inf.Id == "" {
				var err error
				if inf.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
					return err
				}
			}
			s.snap.Influencers = append([]*common.Influencer{&inf}, s.snap.Influencers...)
			rep.Migrated++
			mirror = append(mirror, [2]string{legacyInfluencers, string(raw)})
		}
		if err := b.Delete([]byte(legacyInfluencers)); err != nil {
			return err
		}

		for _, raw := range decodeLegacy(b.Get([]byte(legacyClients)), legacyClients, &rep) {
			var cl common.Client
			if err := json.Unmarshal(raw, &cl); err != nil {
				rep.errf("clients: %v", err)
				continue
			}
			if err := cl.Sanitize().Check(); err != nil {
				rep.errf("client %q: %v", cl.Name, err)
				continue
			}
			if cl.Id == "" {
				var err error
				if cl.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
					return err
				}
			}
			s.snap.Clients = append([]*common.Client{&cl}, s.snap.Clients...)
			rep.Migrated++
			mirror = append(mirror, [2]string{legacyClients, string(raw)})
		}
		if err := b.Delete([]byte(legacyClients)); err != nil {
			return err
		}

		for _, raw := range decodeLegacy(b.Get([]byte(legacyCampaigns)), legacyCampaigns, &rep) {
			var cmp common.Campaign
			if err := json.Unmarshal(raw, &cmp); err != nil {
				rep.errf("campaigns: %v", err)
				continue
			}
			if err := cmp.Sanitize().Check(); err != nil {
				rep.errf("campaign %q: %v", cmp.Title, err)
				continue
			}
			if cmp.Status == "" {
				cmp.Status = common.CampaignDraft
			}
			if cmp.CreatedAt == 0 {
				cmp.CreatedAt = time.Now().UnixNano()
			}
			if cmp.Id == "" {
				var err error
				if cmp.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
					return err
				}
			}
			s.snap.Campaigns = append([]*common.Campaign{&cmp}, s.snap.Campaigns...)
			rep.Migrated++
			mirror = append(mirror, [2]string{legacyCampaigns, string(raw)})
		}
		if err := b.Delete([]byte(legacyCampaigns)); err != nil {
			return err
		}

		for _, raw := range decodeLegacy(b.Get([]byte(legacyGroups)), legacyGroups, &rep) {
			var g common.Group
			if err := json.Unmarshal(raw, &g); err != nil {
				rep.errf("groups: %v", err)
				continue
			}
			if err := g.Sanitize().Check(); err != nil {
				rep.errf("group %q: %v", g.Title, err)
				continue
			}
			if g.Id == "" {
				var err error
				if g.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
					return err
				}
			}
			s.snap.Groups = append([]*common.Group{&g}, s.snap.Groups...)
			rep.Migrated++
			mirror = append(mirror, [2]string{legacyGroups, string(raw)})
		}
		if err := b.Delete([]byte(legacyGroups)); err != nil {
			return err
		}

		return s.saveTx(tx)
	})
	s.mux.Unlock()
	if err != nil {
		return nil, err
	}

	// The mirror runs after the local commit so a dead remote can't undo it.
	if s.cfg.Sync.URL != "" {
		for _, m := range mirror {
			endpoint := s.cfg.Sync.URL + "/" + m[0] + "?key=" + s.cfg.Sync.Key
			if err := misc.Request("POST", endpoint, m[1], nil); err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("mirror %s: %v", m[0], err))
			}
		}
	}

	return &rep, nil
}

func decodeLegacy(v []byte, kind string, rep *SyncReport) []json.RawMessage {
	if len(v) == 0 {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(v, &raws); err != nil {
		rep.errf("%s: %v", kind, err)
		return nil
	}
	return raws
}
