package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type memberRequest struct {
	Identity string `json:"identity"`
}

func handleRegisterMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req memberRequest
		if err := c.BindJSON(&req); err != nil || req.Identity == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := access.RegisterMember(req.Identity); err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"identity": req.Identity})
	}
}

func handleIsMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := access.IsMember(c.Param("identity"))
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"member": member})
	}
}
