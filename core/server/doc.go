// Package server wraps http.Server with environment-driven configuration,
// functional options and graceful shutdown, including an errgroup-compatible
// Run closure for coordinated lifecycle management.
//
//	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		// handle
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(s.Run(ctx, router))
package server
