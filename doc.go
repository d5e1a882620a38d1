// Package zoom drives digital zoom on a camera component.
//
// A Controller turns application zoom levels into 16.16 scale factors using a
// steps.Table and programs them through a ConfigApplier. Immediate zoom snaps
// to the requested level. Smooth zoom is animated: the surrounding preview
// pipeline calls Advance once per frame and each call moves the hardware one
// step toward the target, notifying subscribers of progress.
//
//	ctrl, err := zoom.New(zoom.Config{Applier: component, State: machine})
//	if err != nil {
//		return err
//	}
//	ctrl.Subscribe(zoom.SubscriberFunc(func(index int, final bool) error {
//		log.Printf("zoom %d final=%t", index, final)
//		return nil
//	}))
//	ctrl.RequestSmoothZoomStart(10)
//	for range frames {
//		ctrl.Advance(deviceContext)
//	}
package zoom
