package testdata

var Data = []byte(`{
	"song": {
		"song": "Test",
		"bpm": 150,
		"speed": 2.1,
		"needsVoices": true,
		"player1": "bf",
		"player2": "whitty",
		"validScore": true,
		"notes": [
			{
				"lengthInSteps": 16,
				"mustHitSection": false,
				"typeOfSection": 0,
				"sectionNotes": [[400, 0, 0], [800, 6, 150], [1200, 9, 0]]
			},
			{
				"lengthInSteps": 16,
				"mustHitSection": true,
				"changeBPM": true,
				"bpm": 160,
				"sectionNotes": [[1600, 0, 0], [1600, 3, 0, "alt"], [2000.5, 2, 0]]
			},
			{
				"lengthInSteps": 16,
				"mustHitSection": true,
				"sectionNotes": []
			}
		]
	}
}`)
