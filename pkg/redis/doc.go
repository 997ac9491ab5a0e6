// Package redis connects to redis and keeps validation message templates in
// a redis hash, so several services can share one set of wordings.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := redis.NewTemplates(client, cfg.TemplatesKey)
//	_ = store.Save(ctx, map[string]string{"required": "{field} cannot be empty"})
//
//	templates, err := messages.LoadAll(ctx, fileSource, store)
//
// Config is read from FIELDCHECK_REDIS_* environment variables through
// pkg/config. Errors wrap go-redis errors with errors.Join and can be matched
// with errors.Is against the package sentinels.
package redis
