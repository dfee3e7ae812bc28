package server

import (
	"testing"

	"github.com/swayops/resty"

	"github.com/freetoolai/ViralCreatorAI-sub000/internal/common"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

var adminReq = M{"email": adminEmail, "pass": adminPass}

func TestAdminLogin(t *testing.T) {
	rst := getRst()
	defer putRst(rst)

	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: M{"email": adminEmail, "pass": "wrong"}, ExpectedStatus: 401, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/signIn", Data: adminReq, ExpectedStatus: 200, ExpectedData: misc.StatusOK("1")},
		{Method: "GET", Path: "/api/v1/influencers", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/users", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
	} {
		tr.Run(t, rst)
	}
}

func TestInfluencerCRUD(t *testing.T) {
	rst := getRst()
	defer putRst(rst)

	inf := M{
		"id":   "inf1",
		"name": "Ava Chen",
		"tier": "Micro",
		"platforms": []M{
			{"platform": "Instagram", "handle": "@ava.codes", "followers": 52000},
		},
		"typicalPayout": 100,
		"typicalCharge": 150,
	}

	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: adminReq, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/influencers", Data: inf, ExpectedStatus: 200, ExpectedData: misc.StatusOK("inf1")},
		{Method: "POST", Path: "/api/v1/influencers", Data: M{"tier": "Micro"}, ExpectedStatus: 400, ExpectedData: nil},             // no name
		{Method: "POST", Path: "/api/v1/influencers", Data: M{"name": "X", "tier": "Huge"}, ExpectedStatus: 400, ExpectedData: nil}, // bad tier
		{Method: "PUT", Path: "/api/v1/influencers/inf1", Data: M{"tier": "Macro"}, ExpectedStatus: 200, ExpectedData: misc.StatusOK("inf1")},
		{Method: "PUT", Path: "/api/v1/influencers/inf1", Data: M{"tier": "Huge"}, ExpectedStatus: 400, ExpectedData: nil}, // updates validate like creates
		{Method: "PUT", Path: "/api/v1/influencers/inf1", Data: M{"platforms": []M{{"platform": "myspace", "handle": "x"}}}, ExpectedStatus: 400, ExpectedData: nil},
		{Method: "PUT", Path: "/api/v1/influencers/nope", Data: M{"tier": "Macro"}, ExpectedStatus: 200, ExpectedData: nil}, // silent no-op
	} {
		tr.Run(t, rst)
	}

	var got common.Influencer
	r := rst.DoTesting(t, "GET", "/api/v1/influencers/inf1", nil, &got)
	fatalOn(t, "get influencer", r.Status)
	if got.Tier != common.TierMacro {
		t.Fatalf("tier not merged, got %q", got.Tier)
	}
	if got.Name != "Ava Chen" {
		t.Fatalf("name clobbered by partial update: %q", got.Name)
	}
	// handle and platform are normalized on the way in
	if p := got.Primary(); p == nil || p.Platform != "instagram" || p.Handle != "ava.codes" {
		t.Fatalf("platform not sanitized: %+v", p)
	}

	for _, tr := range [...]*resty.TestRequest{
		{Method: "DELETE", Path: "/api/v1/influencers/inf1", Data: nil, ExpectedStatus: 200, ExpectedData: misc.StatusOK("inf1")},
		{Method: "GET", Path: "/api/v1/influencers/inf1", Data: nil, ExpectedStatus: 404, ExpectedData: nil},
	} {
		tr.Run(t, rst)
	}
}

func TestCampaignRosterFlow(t *testing.T) {
	rst := getRst()
	defer putRst(rst)

	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: adminReq, ExpectedStatus: 200, ExpectedData: nil},

		{Method: "POST", Path: "/api/v1/clients", Data: M{"id": "cl1", "name": "Glow Cosmetics", "email": "brand@glow.test", "accessCode": "GLOW-2026"}, ExpectedStatus: 200, ExpectedData: misc.StatusOK("cl1")},
		{Method: "POST", Path: "/api/v1/influencers", Data: M{"id": "inf5", "name": "Ben Ito", "typicalPayout": 100, "typicalCharge": 150}, ExpectedStatus: 200, ExpectedData: misc.StatusOK("inf5")},

		// campaigns must reference a known client, on create and on update
		{Method: "POST", Path: "/api/v1/campaigns", Data: M{"id": "bad", "clientId": "ghost", "title": "Nope"}, ExpectedStatus: 400, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/campaigns", Data: M{"id": "camp1", "clientId": "cl1", "title": "Summer Launch"}, ExpectedStatus: 200, ExpectedData: misc.StatusOK("camp1")},
		{Method: "PUT", Path: "/api/v1/campaigns/camp1", Data: M{"clientId": "ghost"}, ExpectedStatus: 400, ExpectedData: nil},

		// adding twice keeps the roster at one ref
		{Method: "POST", Path: "/api/v1/campaigns/camp1/influencers/inf5", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/campaigns/camp1/influencers/inf5", Data: nil, ExpectedStatus: 200, ExpectedData: nil},

		{Method: "GET", Path: "/api/v1/campaigns/camp1/financials", Data: nil, ExpectedStatus: 200, ExpectedData: common.Financials{TotalPayout: 100, TotalRevenue: 150, TotalProfit: 50}},
	} {
		tr.Run(t, rst)
	}

	getCamp := func() *common.Campaign {
		var cmp common.Campaign
		r := rst.DoTesting(t, "GET", "/api/v1/campaigns/camp1", nil, &cmp)
		fatalOn(t, "get campaign", r.Status)
		return &cmp
	}

	cmp := getCamp()
	if len(cmp.Influencers) != 1 {
		t.Fatalf("roster length = %d, want 1", len(cmp.Influencers))
	}
	ref := cmp.Influencers[0]
	if ref.Status != common.RefShortlisted || ref.InfluencerFee != 100 || ref.ClientFee != 150 {
		t.Fatalf("bad ref defaults: %+v", ref)
	}
	before := ref.UpdatedAt

	(&resty.TestRequest{Method: "PUT", Path: "/api/v1/campaigns/camp1/influencers/inf5", Data: M{"status": "Approved"}, ExpectedStatus: 200, ExpectedData: nil}).Run(t, rst)

	ref = getCamp().Influencers[0]
	if ref.Status != common.RefApproved {
		t.Fatalf("status not merged: %+v", ref)
	}
	if ref.UpdatedAt <= before {
		t.Fatal("updatedAt did not advance")
	}
	if ref.InfluencerFee != 100 || ref.ClientFee != 150 {
		t.Fatalf("fees changed by status-only update: %+v", ref)
	}

	// deleting the influencer strips it from the roster in the same op
	(&resty.TestRequest{Method: "DELETE", Path: "/api/v1/influencers/inf5", Data: nil, ExpectedStatus: 200, ExpectedData: nil}).Run(t, rst)
	if cmp = getCamp(); len(cmp.Influencers) != 0 {
		t.Fatalf("roster not cascaded: %+v", cmp.Influencers)
	}
	(&resty.TestRequest{Method: "GET", Path: "/api/v1/campaigns/camp1/financials", Data: nil, ExpectedStatus: 200, ExpectedData: common.Financials{}}).Run(t, rst)
}

func TestAccessGateAndPortal(t *testing.T) {
	admin := getRst()
	defer putRst(admin)

	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: adminReq, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/clients", Data: M{"id": "cl2", "name": "Fashion Brand", "accessCode": "FASHION-BRAND-2026"}, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/influencers", Data: M{"id": "inf2", "name": "Cleo Park", "typicalPayout": 40, "typicalCharge": 90}, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/campaigns", Data: M{"id": "camp2", "clientId": "cl2", "title": "Fall Drop"}, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/campaigns/camp2/influencers/inf2", Data: nil, ExpectedStatus: 200, ExpectedData: nil},

		// staff sessions get bounced off portal pages
		{Method: "GET", Path: "/portal/dashboard", Data: nil, ExpectedStatus: 302, ExpectedData: nil},
		{Method: "GET", Path: "/admin/dashboard", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
	} {
		tr.Run(t, admin)
	}

	portal := getRst()
	defer putRst(portal)

	for _, tr := range [...]*resty.TestRequest{
		// no session at all
		{Method: "GET", Path: "/admin/dashboard", Data: nil, ExpectedStatus: 302, ExpectedData: nil},
		{Method: "GET", Path: "/portal/dashboard", Data: nil, ExpectedStatus: 302, ExpectedData: nil},
		{Method: "GET", Path: "/access", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/influencers", Data: nil, ExpectedStatus: 401, ExpectedData: nil},

		// access codes are matched trimmed and case-insensitively
		{Method: "POST", Path: "/api/v1/access", Data: M{"code": "wrong-code"}, ExpectedStatus: 401, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/access", Data: M{"code": " fashion-brand-2026 "}, ExpectedStatus: 200, ExpectedData: misc.StatusOK("cl2")},

		// client sessions are kept out of the admin area and its API
		{Method: "GET", Path: "/admin/dashboard", Data: nil, ExpectedStatus: 302, ExpectedData: nil},
		{Method: "GET", Path: "/access", Data: nil, ExpectedStatus: 302, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/campaigns", Data: nil, ExpectedStatus: 401, ExpectedData: nil},

		{Method: "GET", Path: "/api/portal/campaigns", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "GET", Path: "/api/portal/campaigns/camp2", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		// camp1 belongs to another client
		{Method: "GET", Path: "/api/portal/campaigns/camp1", Data: nil, ExpectedStatus: 404, ExpectedData: nil},

		// only approve/reject are valid portal decisions
		{Method: "PUT", Path: "/api/portal/campaigns/camp2/influencers/inf2/decision", Data: M{"status": "Posted"}, ExpectedStatus: 400, ExpectedData: nil},
		{Method: "PUT", Path: "/api/portal/campaigns/camp2/influencers/inf2/decision", Data: M{"status": "Approved"}, ExpectedStatus: 200, ExpectedData: nil},

		{Method: "GET", Path: "/api/portal/campaigns/camp2/financials", Data: nil, ExpectedStatus: 200, ExpectedData: M{"total": 90}},
	} {
		tr.Run(t, portal)
	}

	// the decision landed on the real roster
	var cmp common.Campaign
	r := admin.DoTesting(t, "GET", "/api/v1/campaigns/camp2", nil, &cmp)
	fatalOn(t, "get campaign", r.Status)
	if ref := cmp.Ref("inf2"); ref == nil || ref.Status != common.RefApproved {
		t.Fatalf("portal decision not applied: %+v", ref)
	}
}

func TestUserRoles(t *testing.T) {
	admin := getRst()
	defer putRst(admin)

	viewerEmail := "viewer@agency.test"
	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: adminReq, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/signUp", Data: M{"name": "Read Only", "email": viewerEmail, "type": "viewer", "pass": defaultPass, "pass2": defaultPass}, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/signUp", Data: M{"name": "Short", "email": "short@agency.test", "type": "viewer", "pass": "123", "pass2": "123"}, ExpectedStatus: 400, ExpectedData: nil},
	} {
		tr.Run(t, admin)
	}

	viewer := getRst()
	defer putRst(viewer)

	for _, tr := range [...]*resty.TestRequest{
		{Method: "POST", Path: "/api/v1/signIn", Data: M{"email": viewerEmail, "pass": defaultPass}, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/influencers", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/influencers", Data: M{"name": "Blocked"}, ExpectedStatus: 401, ExpectedData: nil},
		{Method: "DELETE", Path: "/api/v1/clients/cl1", Data: nil, ExpectedStatus: 401, ExpectedData: nil},
		// user admin and the sync tool stay admin-only
		{Method: "GET", Path: "/api/v1/users", Data: nil, ExpectedStatus: 401, ExpectedData: nil},
		{Method: "POST", Path: "/api/v1/sync", Data: nil, ExpectedStatus: 401, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/signOut", Data: nil, ExpectedStatus: 200, ExpectedData: nil},
		{Method: "GET", Path: "/api/v1/influencers", Data: nil, ExpectedStatus: 401, ExpectedData: nil},
	} {
		tr.Run(t, viewer)
	}

	for _, tr := range [...]*resty.TestRequest{
		// the seeded admin account cannot be removed
		{Method: "DELETE", Path: "/api/v1/users/1", Data: nil, ExpectedStatus: 400, ExpectedData: nil},
		{Method: "DELETE", Path: "/api/v1/users/2", Data: nil, ExpectedStatus: 200, ExpectedData: misc.StatusOK("2")},
		{Method: "POST", Path: "/api/v1/signIn", Data: M{"email": viewerEmail, "pass": defaultPass}, ExpectedStatus: 401, ExpectedData: nil},
	} {
		tr.Run(t, admin)
	}
}
