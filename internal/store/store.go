package store

import (
	"sync"
	"time"

	"github.com/boltdb/bolt"

	"github.com/freetoolai/ViralCreatorAI-sub000/config"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

// Store is the single source of truth for the agency's entities. All reads
// are served from memory; every mutation rewrites the bolt snapshot before
// returning, so a fresh Store over the same file always sees the last write.
// Published entities are never mutated in place. Updates apply the patch to
// a clone and swap the stored pointer, so a pointer handed out by a getter
// stays stable while later writes land.
type Store struct {
	mux sync.RWMutex
	db  *bolt.DB
	cfg *config.Config

	snap snapshot
}

func New(db *bolt.DB, cfg *config.Config) (*Store, error) {
	s := &Store{db: db, cfg: cfg}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

///////// Influencers /////////

func (s *Store) Influencers() []*common.Influencer {
	s.mux.RLock()
	out := make([]*common.Influencer, len(s.snap.Influencers))
	copy(out, s.snap.Influencers)
	s.mux.RUnlock()
	return out
}

func (s *Store) Influencer(id string) *common.Influencer {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.snap.influencer(id)
}

// AddInfluencer prepends so the newest entry lists first. An empty id gets
// one from the index bucket; a caller-supplied id is taken as-is.
func (s *Store) AddInfluencer(inf *common.Influencer) (string, error) {
	if err := inf.Sanitize().Check(); err != nil {
		return "", err
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) (err error) {
		if inf.Id == "" {
			if inf.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
				return
			}
		}
		s.snap.Influencers = append([]*common.Influencer{inf}, s.snap.Influencers...)
		return s.saveTx(tx)
	})
	if err != nil {
		return "", err
	}
	return inf.Id, nil
}

// UpdateInfluencer merges the patch into the matching influencer. Unknown
// ids are a silent no-op.
func (s *Store) UpdateInfluencer(id string, u *common.InfluencerUpdate) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	inf := s.snap.influencer(id)
	if inf == nil {
		return nil
	}
	next := inf.Clone()
	if err := next.Apply(u); err != nil {
		return err
	}
	s.snap.setInfluencer(next)
	return s.save()
}

// DeleteInfluencer removes the influencer and strips its ref from every
// campaign roster in the same mutation.
func (s *Store) DeleteInfluencer(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	out := s.snap.Influencers[:0]
	for _, inf := range s.snap.Influencers {
		if inf.Id != id {
			out = append(out, inf)
		}
	}
	s.snap.Influencers = out

	for i, cmp := range s.snap.Campaigns {
		if cmp.Ref(id) == nil {
			continue
		}
		next := cmp.Clone()
		roster := next.Influencers[:0]
		for _, ref := range next.Influencers {
			if ref.InfluencerId != id {
				roster = append(roster, ref)
			}
		}
		next.Influencers = roster
		s.snap.Campaigns[i] = next
	}
	return s.save()
}

///////// Clients /////////

func (s *Store) Clients() []*common.Client {
	s.mux.RLock()
	out := make([]*common.Client, len(s.snap.Clients))
	copy(out, s.snap.Clients)
	s.mux.RUnlock()
	return out
}

func (s *Store) Client(id string) *common.Client {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.snap.client(id)
}

// ClientByAccessCode resolves the portal credential. The match is trimmed
// and case-insensitive.
func (s *Store) ClientByAccessCode(code string) *common.Client {
	s.mux.RLock()
	defer s.mux.RUnlock()
	for _, cl := range s.snap.Clients {
		if cl.CodeMatches(code) {
			return cl
		}
	}
	return nil
}

func (s *Store) AddClient(cl *common.Client) (string, error) {
	if err := cl.Sanitize().Check(); err != nil {
		return "", err
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) (err error) {
		if cl.Id == "" {
			if cl.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
				return
			}
		}
		s.snap.Clients = append([]*common.Client{cl}, s.snap.Clients...)
		return s.saveTx(tx)
	})
	if err != nil {
		return "", err
	}
	return cl.Id, nil
}

func (s *Store) UpdateClient(id string, u *common.ClientUpdate) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	cl := s.snap.client(id)
	if cl == nil {
		return nil
	}
	next := cl.Clone()
	next.Apply(u)
	s.snap.setClient(next)
	return s.save()
}

// DeleteClient does not cascade to the client's campaigns or groups.
func (s *Store) DeleteClient(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := s.snap.Clients[:0]
	for _, cl := range s.snap.Clients {
		if cl.Id != id {
			out = append(out, cl)
		}
	}
	s.snap.Clients = out
	return s.save()
}

///////// Campaigns /////////

func (s *Store) Campaigns() []*common.Campaign {
	s.mux.RLock()
	out := make([]*common.Campaign, len(s.snap.Campaigns))
	copy(out, s.snap.Campaigns)
	s.mux.RUnlock()
	return out
}

func (s *Store) Campaign(id string) *common.Campaign {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.snap.campaign(id)
}

func (s *Store) CampaignsByClient(clientId string) []*common.Campaign {
	s.mux.RLock()
	defer s.mux.RUnlock()
	var out []*common.Campaign
	for _, cmp := range s.snap.Campaigns {
		if cmp.ClientId == clientId {
			out = append(out, cmp)
		}
	}
	return out
}

func (s *Store) AddCampaign(cmp *common.Campaign) (string, error) {
	if err := cmp.Sanitize().Check(); err != nil {
		return "", err
	}
	if cmp.Status == "" {
		cmp.Status = common.CampaignDraft
	}
	if cmp.CreatedAt == 0 {
		cmp.CreatedAt = time.Now().UnixNano()
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) (err error) {
		if cmp.Id == "" {
			if cmp.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
				return
			}
		}
		s.snap.Campaigns = append([]*common.Campaign{cmp}, s.snap.Campaigns...)
		return s.saveTx(tx)
	})
	if err != nil {
		return "", err
	}
	return cmp.Id, nil
}

func (s *Store) UpdateCampaign(id string, u *common.CampaignUpdate) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	cmp := s.snap.campaign(id)
	if cmp == nil {
		return nil
	}
	next := cmp.Clone()
	if err := next.Apply(u); err != nil {
		return err
	}
	s.snap.setCampaign(next)
	return s.save()
}

// DeleteCampaign does not cascade to groups that still list the campaign.
func (s *Store) DeleteCampaign(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := s.snap.Campaigns[:0]
	for _, cmp := range s.snap.Campaigns {
		if cmp.Id != id {
			out = append(out, cmp)
		}
	}
	s.snap.Campaigns = out
	return s.save()
}

///////// Roster /////////

// AddInfluencerToCampaign builds a roster ref defaulting the fees to the
// influencer's typical rates. Missing campaign or influencer, or a ref
// already on the roster, is a silent no-op.
func (s *Store) AddInfluencerToCampaign(campaignId, influencerId string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	cmp, inf := s.snap.campaign(campaignId), s.snap.influencer(influencerId)
	if cmp == nil || inf == nil {
		return nil
	}
	if cmp.Ref(influencerId) != nil {
		return nil
	}

	next := cmp.Clone()
	next.Influencers = append(next.Influencers, &common.CampaignInfluencerRef{
		InfluencerId:  influencerId,
		Status:        common.RefShortlisted,
		InfluencerFee: misc.Sanitize(inf.TypicalPayout),
		ClientFee:     misc.Sanitize(inf.TypicalCharge),
		UpdatedAt:     time.Now().UnixNano(),
	})
	s.snap.setCampaign(next)
	return s.save()
}

// UpdateInfluencerInCampaign merges the patch into the matching ref and
// stamps its UpdatedAt. Silent no-op when the campaign or ref is absent.
func (s *Store) UpdateInfluencerInCampaign(campaignId, influencerId string, u *common.RefUpdate) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	cmp := s.snap.campaign(campaignId)
	if cmp == nil {
		return nil
	}
	if cmp.Ref(influencerId) == nil {
		return nil
	}
	next := cmp.Clone()
	if err := next.Ref(influencerId).Apply(u); err != nil {
		return err
	}
	s.snap.setCampaign(next)
	return s.save()
}

func (s *Store) RemoveInfluencerFromCampaign(campaignId, influencerId string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	cmp := s.snap.campaign(campaignId)
	if cmp == nil || cmp.Ref(influencerId) == nil {
		return nil
	}
	next := cmp.Clone()
	roster := next.Influencers[:0]
	for _, ref := range next.Influencers {
		if ref.InfluencerId != influencerId {
			roster = append(roster, ref)
		}
	}
	next.Influencers = roster
	s.snap.setCampaign(next)
	return s.save()
}

// CampaignFinancials folds the roster fees. A missing campaign or an empty
// roster yields the zero struct.
func (s *Store) CampaignFinancials(campaignId string) common.Financials {
	s.mux.RLock()
	defer s.mux.RUnlock()
	cmp := s.snap.campaign(campaignId)
	if cmp == nil {
		return common.Financials{}
	}
	return cmp.Fold()
}

///////// Groups /////////

func (s *Store) Groups() []*common.Group {
	s.mux.RLock()
	out := make([]*common.Group, len(s.snap.Groups))
	copy(out, s.snap.Groups)
	s.mux.RUnlock()
	return out
}

func (s *Store) Group(id string) *common.Group {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.snap.group(id)
}

func (s *Store) GroupsByClient(clientId string) []*common.Group {
	s.mux.RLock()
	defer s.mux.RUnlock()
	var out []*common.Group
	for _, g := range s.snap.Groups {
		if g.ClientId == clientId {
			out = append(out, g)
		}
	}
	return out
}

func (s *Store) AddGroup(g *common.Group) (string, error) {
	if err := g.Sanitize().Check(); err != nil {
		return "", err
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) (err error) {
		if g.Id == "" {
			if g.Id, err = misc.GetNextIndex(tx, s.cfg.Bucket.Store); err != nil {
				return
			}
		}
		s.snap.Groups = append([]*common.Group{g}, s.snap.Groups...)
		return s.saveTx(tx)
	})
	if err != nil {
		return "", err
	}
	return g.Id, nil
}

func (s *Store) UpdateGroup(id string, u *common.GroupUpdate) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	g := s.snap.group(id)
	if g == nil {
		return nil
	}
	next := g.Clone()
	next.Apply(u)
	s.snap.setGroup(next)
	return s.save()
}

func (s *Store) DeleteGroup(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	out := s.snap.Groups[:0]
	for _, g := range s.snap.Groups {
		if g.Id != id {
			out = append(out, g)
		}
	}
	s.snap.Groups = out
	return s.save()
}
