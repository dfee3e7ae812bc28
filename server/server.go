package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/freetoolai/ViralCreatorAI-sub000/config"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/auth"
	"github.com/freetoolai/ViralCreatorAI-sub000/internal/store"
	"github.com/freetoolai/ViralCreatorAI-sub000/misc"
)

type Server struct {
	Cfg *config.Config

	r     *gin.Engine
	db    *bolt.DB
	auth  *auth.Auth
	store *store.Store
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	srv := &Server{
		Cfg: cfg,
		r:   r,
		db:  misc.OpenDB(cfg.DBPath, cfg.DBName),
	}

	if err := srv.initializeDB(); err != nil {
		return nil, err
	}

	st, err := store.New(srv.db, cfg)
	if err != nil {
		return nil, err
	}
	srv.store = st
	srv.auth = auth.New(srv.db, cfg, st)

	if err = srv.db.Update(func(tx *bolt.Tx) error {
		return srv.auth.EnsureAdminTx(tx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Pass)
	}); err != nil {
		return nil, err
	}

	if !cfg.Sandbox {
		go srv.auth.PurgeInvalidTokens()
	}

	srv.initializeRoutes(r)
	return srv, nil
}

func (srv *Server) initializeDB() error {
	return srv.db.Update(func(tx *bolt.Tx) error {
		for _, b := range srv.Cfg.AllBuckets() {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		if err := misc.InitIndex(tx, srv.Cfg.Bucket.User, 1); err != nil {
			return err
		}
		return misc.InitIndex(tx, srv.Cfg.Bucket.Store, 1)
	})
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	return srv.db.Close()
}
