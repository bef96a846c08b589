package core

import "github.com/huangsam/speedcheck/schema"

// Advice thresholds. Runs below/above these trigger targeted tips.
const (
	lowDownloadMbps = 10
	lowUploadMbps   = 5
	highPingMs      = 50
	lowStability    = 70
)

// ImprovementTips generates advice for improving connection quality
// based on the most recent recorded run. With no run recorded, it
// returns a single pointer to run a test first.
func ImprovementTips(last *schema.TestResult) []string {
	if last == nil {
		return []string{"Run a speed test first to get personalized tips."}
	}

	tips := []string{"Tips for improving your internet speed:"}

	if last.DownloadMbps < lowDownloadMbps {
		tips = append(tips,
			"- Your download speed is quite low. Consider upgrading your internet plan.",
			"- Connect to your router using an Ethernet cable instead of Wi-Fi for better speeds.")
	}

	if last.UploadMbps < lowUploadMbps {
		tips = append(tips,
			"- Your upload speed is low, which may affect video calls and file uploads.",
			"- Close background applications that might be uploading data.")
	}

	if last.PingMs > highPingMs {
		tips = append(tips,
			"- Your ping is high, which may cause lag in online games and video calls.",
			"- Connect to a server that's geographically closer to you if possible.",
			"- Reduce the number of devices connected to your network.")
	}

	if last.StabilityScore < lowStability {
		tips = append(tips,
			"- Your connection stability is not optimal, which may cause intermittent issues.",
			"- Check for interference from other electronic devices.",
			"- Update your router's firmware or consider replacing an old router.",
			"- Position your router in a central location, away from walls and obstructions.")
	}

	tips = append(tips,
		"- Restart your router and modem if you haven't done so recently.",
		"- Check for malware or background processes that might be using your bandwidth.",
		"- Consider using a wired connection for critical activities like gaming or video conferencing.")

	return tips
}
