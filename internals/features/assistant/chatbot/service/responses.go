package service

// Pool balasan tetap. Urutan dipertahankan supaya pilihan acak dengan seed tertentu bisa diuji.
var (
	greetingReplies = []string{
		"Hello! 👋 I'm your AI learning assistant. How can I help you today?",
		"Hi there! Ready to continue your learning journey? What can I help you with?",
		"Hey! Great to see you. What would you like to know about your progress?",
	}

	fallbackReplies = []string{
		"I'm here to help! You can ask me about:\n• Your progress and performance\n• Course recommendations\n• Learning tips and motivation\n• Course information",
		"I can help you with progress tracking, course recommendations, and learning support. What would you like to know?",
	}

	motivationalQuotes = []string{
		"💪 Remember: Every expert was once a beginner. You're doing great by showing up!",
		"🌟 Learning is a journey, not a race. Take it one step at a time!",
		"🚀 The fact that you're here means you're already ahead of 90% of people. Keep going!",
		"🎯 Consistency beats perfection. Even 15 minutes of learning today is progress!",
		"✨ Your future self will thank you for the effort you're putting in today!",
		"🔥 Challenges are what make life interesting. Overcoming them is what makes it meaningful!",
		"💡 The only way to learn is to do. You're on the right path!",
	}
)

const (
	helpReply = "🤝 **I'm here to help!**\n\nYou can ask me about:\n\n" +
		"• **Progress**: \"How am I doing?\" or \"Show my progress\"\n" +
		"• **Recommendations**: \"What should I learn next?\"\n" +
		"• **Motivation**: \"I need motivation\"\n" +
		"• **Certificates**: \"How do I get a certificate?\"\n\n" +
		"Just type your question naturally, and I'll do my best to assist you!"

	noEnrollmentReply   = "You haven't enrolled in any courses yet! 📚 Check out our course library to get started on your learning journey."
	allEnrolledReply    = "🎉 Wow! You're enrolled in all available courses! Check back later for new content."
	noCertificatesReply = "🎓 You haven't earned any certificates yet. Complete a course with 100% progress to earn your first certificate!"

	progressErrorReply       = "I couldn't fetch your progress right now. Please try again!"
	recommendationErrorReply = "I couldn't generate recommendations right now. Please try again!"
	certificateErrorReply    = "I couldn't fetch your certificates right now. Please try again!"

	tipLowProgress  = "💡 Tip: Try to dedicate at least 30 minutes daily to maintain momentum!"
	tipMidProgress  = "🎯 You're making great progress! Keep up the consistent effort!"
	tipHighProgress = "🌟 Excellent work! You're crushing it! Keep going!"

	recommendationFooter = "💡 These courses are highly rated and perfect for your learning path!"

	welcomeTemplate = "Hi %s! 👋 I'm your AI learning assistant. I can help you track your progress, get course recommendations, and stay motivated. What would you like to know?"
)
