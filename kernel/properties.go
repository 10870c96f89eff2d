package kernel

import "github.com/weyoume/wenode-sub002/objects"

// currentProperties returns the active median chain properties (spec
// §3.8/§4.11), or the zero value before the first schedule refresh (which
// every evaluator that consults a rate/ratio treats as "no positions
// possible yet" rather than panicking).
func (c *Chain) currentProperties() objects.ChainProperties {
	var latest *objects.ProducerSchedule
	c.Schedules.Each(func(s *objects.ProducerSchedule) {
		if latest == nil || s.RefreshedAt > latest.RefreshedAt {
			latest = s
		}
	})
	if latest == nil {
		return objects.ChainProperties{}
	}
	return latest.Properties
}
