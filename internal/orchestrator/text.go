package orchestrator

// Canned copy for turns that never reach the generation provider.

const welcomeText = `Welcome to EduQuest, your intelligent study companion!

I can help you:
  - Plan your studies ("I have a Java exam in 3 days")
  - Test your knowledge ("Quiz me on object-oriented programming")
  - Or just chat about what you're learning

What would you like to do today?`

const helpText = `Here's what I can do:

Study planning
  Tell me about an upcoming exam or what you want to learn, and I'll
  build a day-by-day plan. Example: "Help me prepare for my Physics
  exam next week". Once you have a plan, start a message with 'refine'
  to adjust it ("refine: make day 1 lighter").

Quizzing
  Ask me to quiz you on any subject or topic. During a quiz you can
  type 'hint' for a nudge, 'skip' to move on, or 'quit quiz' to stop.

Anything else
  Just talk to me. Type 'exit' when you're done.`

const farewellText = "Good luck with your studies! See you next time."

const askQuizTopicsText = "I'd love to quiz you! What subject or topics should the questions cover?"

const planFailedText = "I couldn't put a study plan together right now. Please try again in a moment."

const questionFailedText = "I had trouble coming up with that question, so we'll move past it."

const planFollowupText = "When you're ready to practice, just say 'quiz me'."
