package store

import (
	"log"

	"github.com/boltdb/bolt"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// SnapshotVersion is bumped whenever the snapshot shape changes; every bump
// needs a matching entry in migrations.
const SnapshotVersion = 2

const snapshotKey = "snapshot"

// snapshot is the whole persisted state, one JSON blob under one key. The
// slices keep insertion order, newest first.
type snapshot struct {
	Version     int                  `json:"version"`
	Influencers []*common.Influencer `json:"influencers"`
	Clients     []*common.Client     `json:"clients"`
	Campaigns   []*common.Campaign   `json:"campaigns"`
	Groups      []*common.Group      `json:"groups"`
}

func (sn *snapshot) influencer(id string) *common.Influencer {
	for _, inf := range sn.Influencers {
		if inf.Id == id {
			return inf
		}
	}
	return nil
}

func (sn *snapshot) client(id string) *common.Client {
	for _, cl := range sn.Clients {
		if cl.Id == id {
			return cl
		}
	}
	return nil
}

func (sn *snapshot) campaign(id string) *common.Campaign {
	for _, cmp := range sn.Campaigns {
		if cmp.Id == id {
			return cmp
		}
	}
	return nil
}

func (sn *snapshot) group(id string) *common.Group {
	for _, g := range sn.Groups {
		if g.Id == id {
			return g
		}
	}
	return nil
}

// The set helpers swap the stored pointer wholesale. Entities are never
// mutated after publication, so readers holding the old pointer keep a
// consistent view.

func (sn *snapshot) setInfluencer(inf *common.Influencer) {
	for i, cur := range sn.Influencers {
		if cur.Id == inf.Id {
			sn.Influencers[i] = inf
			return
		}
	}
}

func (sn *snapshot) setClient(cl *common.Client) {
	for i, cur := range sn.Clients {
		if cur.Id == cl.Id {
			sn.Clients[i] = cl
			return
		}
	}
}

func (sn *snapshot) setCampaign(cmp *common.Campaign) {
	for i, cur := range sn.Campaigns {
		if cur.Id == cmp.Id {
			sn.Campaigns[i] = cmp
			return
		}
	}
}

func (sn *snapshot) setGroup(g *common.Group) {
	for i, cur := range sn.Groups {
		if cur.Id == g.Id {
			sn.Groups[i] = g
			return
		}
	}
}

// migrations run in order from the stored version up to SnapshotVersion.
// Index n migrates version n to n+1.
var migrations = [SnapshotVersion]func(*snapshot){
	// 0 -> 1: pre-versioned blobs carried raw form input; normalize it.
	func(sn *snapshot) {
		for _, inf := range sn.Influencers {
			inf.Sanitize()
		}
		for _, cl := range sn.Clients {
			cl.Sanitize()
		}
		for _, cmp := range sn.Campaigns {
			cmp.Sanitize()
		}
	},
	// 1 -> 2: roster refs gained an explicit status; backfill the default.
	func(sn *snapshot) {
		for _, cmp := range sn.Campaigns {
			for _, ref := range cmp.Influencers {
				if ref.Status == "" {
					ref.Status = common.RefShortlisted
				}
			}
		}
	},
}

func (s *Store) load() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		v := misc.GetBucket(tx, s.cfg.Bucket.Store).Get([]byte(snapshotKey))
		if len(v) == 0 {
			s.snap = snapshot{Version: SnapshotVersion}
			return s.saveTx(tx)
		}
		if err := misc.GetTxJson(tx, s.cfg.Bucket.Store, snapshotKey, &s.snap); err != nil {
			return err
		}
		if s.snap.Version >= SnapshotVersion {
			return nil
		}
		for v := s.snap.Version; v < SnapshotVersion; v++ {
			log.Println("migrating store snapshot", v, "->", v+1)
			migrations[v](&s.snap)
		}
		s.snap.Version = SnapshotVersion
		return s.saveTx(tx)
	})
}

func (s *Store) saveTx(tx *bolt.Tx) error {
	return misc.PutTxJson(tx, s.cfg.Bucket.Store, snapshotKey, &s.snap)
}

func (s *Store) save() error {
	return s.db.Update(s.saveTx)
}
