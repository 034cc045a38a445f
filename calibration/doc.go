// Package calibration distributes scoring weight sets through etcd so that
// every engine instance in a deployment scores with identical constants.
//
// The composite threat score must be reproducible across platforms: the same
// inference batch has to yield the same score on every client and on the
// server. Weight sets are therefore published to a well-known etcd key and
// fetched (or watched) by engines at startup, rather than being baked into
// each binary separately.
//
// A deployment publishes a named weight set once:
//
//	client, _ := calibration.NewClient(calibration.Config{
//	    Endpoints: []string{"localhost:2379"},
//	})
//	defer client.Close()
//	client.Publish(ctx, "production", score.DefaultWeights())
//
// Engines fetch it at startup and watch for recalibration:
//
//	weights, _ := client.Fetch(ctx, "production")
//	engine, _ := threatindex.NewEngine(threatindex.WithWeights(weights))
//
// Every weight set is validated before publish and after fetch; a corrupt or
// incomplete set is never handed to an engine.
package calibration
