// Package timezone keeps the application timezone used for "today" defaults,
// date parsing and timestamp formatting.
//
//	timezone.Init(cfg.App.Timezone)          // once, at process start
//	today := timezone.Today()                // midnight in the app timezone
//	d, err := timezone.Parse(time.DateOnly, "2025-12-10")
//
// Until Init is called every helper works in UTC. Use IANA names such as
// "UTC" or "Asia/Ho_Chi_Minh".
package timezone
